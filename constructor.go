package govali

import "go.uber.org/zap"

// Constructor validates the arguments of a constructor for T before the object exists.
// Parameters are captured at declaration time with Param.
type Constructor[T any] struct {
	name     string
	params   []Check
	strategy Strategy
	logger   *zap.Logger
}

// NewConstructor creates a Constructor validator for T.
func NewConstructor[T any](opts ...Option) *Constructor[T] {
	o := newOptions[T](opts)
	return &Constructor[T]{
		name:     o.name,
		params:   []Check{},
		strategy: o.strategy,
		logger:   o.logger,
	}
}

// Param captures a named argument value and returns the handle used to attach its rule.
// It panics when name is empty.
func Param[T, F any](c *Constructor[T], name string, value F) *ParamBinding[*Constructor[T], F] {
	mustArgument(c != nil, "validator must not be nil")
	mustArgument(name != "", "parameter name must not be empty")
	b := &ParamBinding[*Constructor[T], F]{parent: c, name: name, value: value}
	c.params = append(c.params, b.check)
	return b
}

// Name returns the target name used in Results messages.
func (c *Constructor[T]) Name() string { return c.name }

// Len returns the number of declared parameter bindings.
func (c *Constructor[T]) Len() int { return len(c.params) }

// Strategy returns the active evaluation strategy.
func (c *Constructor[T]) Strategy() Strategy { return c.strategy }

// And is a no-op that lets declarations read as a sentence.
func (c *Constructor[T]) And() *Constructor[T] { return c }

// FailFast switches to stopping at the first failing parameter.
func (c *Constructor[T]) FailFast() *Constructor[T] {
	c.strategy = FailFast
	return c
}

// CollectFailures switches to evaluating every parameter.
func (c *Constructor[T]) CollectFailures() *Constructor[T] {
	c.strategy = CollectAll
	return c
}

// Validate runs the active strategy over the captured parameters.
func (c *Constructor[T]) Validate() (*Results, error) {
	res, err := c.strategy.Run(c.name, c.params)
	if err != nil {
		return nil, err
	}
	logRun(c.logger, c.name, c.strategy, len(c.params), res)
	return res, nil
}

// Check validates the parameters and converts failures into an *AggregatedError.
func (c *Constructor[T]) Check() error {
	res, err := c.Validate()
	if err != nil {
		return err
	}
	return res.Err()
}
