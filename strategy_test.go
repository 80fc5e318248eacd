package govali_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/govali"
)

// checksFailingAt builds n checks; those listed in failing (1-indexed) fail.
// calls records which checks were evaluated.
func checksFailingAt(n int, failing ...int) ([]govali.Check, *[]int) {
	fail := map[int]bool{}
	for _, k := range failing {
		fail[k] = true
	}
	calls := &[]int{}
	checks := make([]govali.Check, n)
	for i := range checks {
		k := i + 1
		checks[i] = func() (govali.Outcome, error) {
			*calls = append(*calls, k)
			if fail[k] {
				return govali.FailField("bad", fmt.Sprintf("f%d", k)), nil
			}
			return govali.Ok(), nil
		}
	}
	return checks, calls
}

func TestStrategy_FailFast_StopsAtFirstFailure(t *testing.T) {
	checks, calls := checksFailingAt(5, 3, 4)

	res, err := govali.FailFast.Run("T", checks)
	require.NoError(t, err)

	require.Equal(t, 1, res.Len())
	assert.Equal(t, "f3", res.Failures()[0].Field())
	assert.Equal(t, []int{1, 2, 3}, *calls)
}

func TestStrategy_CollectAll_KeepsOrder(t *testing.T) {
	checks, calls := checksFailingAt(5, 2, 4, 5)

	res, err := govali.CollectAll.Run("T", checks)
	require.NoError(t, err)

	assert.Equal(t, []string{"f2", "f4", "f5"}, res.Fields())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, *calls)
}

func TestStrategy_NoFailures(t *testing.T) {
	for _, s := range []govali.Strategy{govali.CollectAll, govali.FailFast} {
		checks, calls := checksFailingAt(3)
		res, err := s.Run("T", checks)
		require.NoError(t, err)
		assert.False(t, res.HasFailures(), s.String())
		assert.Len(t, *calls, 3)
	}
}

func TestStrategy_RejectsBadInput(t *testing.T) {
	for _, s := range []govali.Strategy{govali.CollectAll, govali.FailFast} {
		_, err := s.Run("T", nil)
		assert.ErrorIs(t, err, govali.ErrInvalidArgument)

		_, err = s.Run("", []govali.Check{})
		assert.ErrorIs(t, err, govali.ErrInvalidArgument)
	}

	_, err := govali.Strategy(7).Run("T", []govali.Check{})
	assert.ErrorIs(t, err, govali.ErrUnknownStrategy)
}

func TestStrategy_CheckErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	evaluated := false
	checks := []govali.Check{
		func() (govali.Outcome, error) { return govali.Outcome{}, boom },
		func() (govali.Outcome, error) {
			evaluated = true
			return govali.Ok(), nil
		},
	}

	_, err := govali.CollectAll.Run("T", checks)
	assert.ErrorIs(t, err, boom)
	assert.False(t, evaluated)
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]govali.Strategy{
		"collectAll":  govali.CollectAll,
		"collect":     govali.CollectAll,
		"COLLECT-ALL": govali.CollectAll,
		"failFast":    govali.FailFast,
		"fail-fast":   govali.FailFast,
		" FailFast ":  govali.FailFast,
	} {
		got, err := govali.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := govali.ParseStrategy("sometimes")
	assert.ErrorIs(t, err, govali.ErrUnknownStrategy)
}

func TestStrategy_Text(t *testing.T) {
	b, err := govali.FailFast.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "failFast", string(b))

	var s govali.Strategy
	require.NoError(t, s.UnmarshalText([]byte("fail-fast")))
	assert.Equal(t, govali.FailFast, s)

	_, err = govali.Strategy(9).MarshalText()
	assert.ErrorIs(t, err, govali.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", govali.Strategy(9).String())
}
