package rules

import (
	"fmt"

	"github.com/reoring/govali"
)

// Integer is the constraint for the integer rules.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Equals requires the value to equal n.
func Equals[N Integer](n N) govali.Rule[N] {
	return govali.FromCode(func(v N) bool { return v == n },
		govali.CodeEqual, fmt.Sprintf("must equal %d", n), "n", n)
}

// LowerThan requires v < max.
func LowerThan[N Integer](max N) govali.Rule[N] {
	return govali.FromCode(func(v N) bool { return v < max },
		govali.CodeTooBig, fmt.Sprintf("must be lower than %d", max), "n", max)
}

// GreaterThan requires v > min.
func GreaterThan[N Integer](min N) govali.Rule[N] {
	return govali.FromCode(func(v N) bool { return v > min },
		govali.CodeTooSmall, fmt.Sprintf("must be greater than %d", min), "n", min)
}

// AtMost requires v <= max.
func AtMost[N Integer](max N) govali.Rule[N] {
	return govali.FromCode(func(v N) bool { return v <= max },
		govali.CodeAtMost, fmt.Sprintf("must be at most %d", max), "n", max)
}

// AtLeast requires v >= min.
func AtLeast[N Integer](min N) govali.Rule[N] {
	return govali.FromCode(func(v N) bool { return v >= min },
		govali.CodeAtLeast, fmt.Sprintf("must be at least %d", min), "n", min)
}

// InBetween requires min < v < max.
func InBetween[N Integer](min, max N) govali.Rule[N] {
	return GreaterThan(min).And(LowerThan(max))
}

// InBetweenInclusive requires min <= v <= max. Bounds are compared directly, so the extreme
// values of N are usable as bounds.
func InBetweenInclusive[N Integer](min, max N) govali.Rule[N] {
	return AtLeast(min).And(AtMost(max))
}

// Even requires an even value.
func Even[N Integer]() govali.Rule[N] {
	return govali.FromCode(func(v N) bool { return v%2 == 0 }, govali.CodeEven, "must be even")
}

// Odd requires an odd value.
func Odd[N Integer]() govali.Rule[N] {
	return govali.FromCode(func(v N) bool { return v%2 != 0 }, govali.CodeOdd, "must be odd")
}
