package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/govali"
	"github.com/reoring/govali/rules"
)

func TestNotNull(t *testing.T) {
	var p *int
	n := 1
	assert.Equal(t, "must not be null", rules.NotNull[*int]()(p).Cause())
	assert.True(t, rules.NotNull[*int]()(&n).Valid())

	var m map[string]int
	assert.True(t, rules.NotNull[map[string]int]()(m).Invalid())

	var a any
	assert.True(t, rules.NotNull[any]()(a).Invalid())
	assert.True(t, rules.NotNull[any]()(0).Valid())

	assert.Equal(t, govali.CodeNotNull, rules.NotNull[[]int]()(nil).Code())
}

func TestEqualTo(t *testing.T) {
	r := rules.EqualTo("admin")
	assert.True(t, r("admin").Valid())

	o := r("guest")
	assert.True(t, o.Invalid())
	assert.Equal(t, `must be equal to "admin"`, o.Cause())
	assert.Equal(t, govali.CodeEqualTo, o.Code())

	assert.Equal(t, `must be equal to "7"`, rules.EqualTo(7)(8).Cause())
}
