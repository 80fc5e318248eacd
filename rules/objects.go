package rules

import (
	"fmt"

	"github.com/reoring/govali"
)

// NotNull requires a non-nil value: nil interfaces, pointers, maps, slices, channels and
// functions fail. Values of other kinds always pass.
func NotNull[V any]() govali.Rule[V] {
	return govali.FromCode(func(v V) bool { return !govali.IsNil(v) }, govali.CodeNotNull, "must not be null")
}

// EqualTo requires the value to equal want.
func EqualTo[V comparable](want V) govali.Rule[V] {
	return govali.FromCode(func(v V) bool { return v == want },
		govali.CodeEqualTo, fmt.Sprintf("must be equal to \"%v\"", want), "v", want)
}
