package govali_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/govali"
	"github.com/reoring/govali/rules"
)

func buildPerson(name string, age int) (Person, error) {
	b := govali.NewBuilder[Person]()
	govali.BuildParam(b, "name", name).MustSatisfy(rules.NotBlank())
	govali.BuildParam(b, "age", age).MustSatisfy(rules.AtLeast(0))
	return b.Build(func() (Person, error) { return Person{Name: name, Age: age}, nil })
}

func TestBuilder_Build(t *testing.T) {
	p, err := buildPerson("Alice", 30)
	require.NoError(t, err)
	assert.Equal(t, Person{Name: "Alice", Age: 30}, p)
}

func TestBuilder_ValidationFailureSkipsConstruct(t *testing.T) {
	called := false
	b := govali.NewBuilder[Person]()
	govali.BuildParam(b, "name", " ").MustSatisfy(rules.NotBlank())

	p, err := b.Build(func() (Person, error) {
		called = true
		return Person{}, nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.Zero(t, p)
	agg, ok := govali.AsAggregated(err)
	require.True(t, ok)
	assert.Equal(t, "Person", agg.Target)
	assert.Equal(t, "name", agg.Failures[0].Field())
}

func TestBuilder_ConstructErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	b := govali.NewBuilder[Person]()
	govali.BuildParam(b, "age", 1).MustSatisfy(rules.Odd[int]())

	_, err := b.Build(func() (Person, error) { return Person{}, boom })
	assert.ErrorIs(t, err, boom)
}

func TestBuilder_Strategies(t *testing.T) {
	b := govali.NewBuilder[Person](govali.WithName("Account"))
	govali.BuildParam(b, "name", "").MustSatisfy(rules.NotEmpty())
	govali.BuildParam(b, "age", -1).MustSatisfy(rules.AtLeast(0))

	res, err := b.FailFast().Validate()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
	assert.Equal(t, "Account", res.Target())

	res, err = b.CollectFailures().Validate()
	require.NoError(t, err)
	assert.Equal(t, 2, res.Len())
}

func TestBuilder_NilConstructPanics(t *testing.T) {
	b := govali.NewBuilder[Person]()
	assert.PanicsWithError(t, "govali: invalid argument: construct function must not be nil", func() {
		_, _ = b.Build(nil)
	})
}
