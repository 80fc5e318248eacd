package govali

import "go.uber.org/zap"

// Domain validates objects of type T against fields declared with Field and Nested.
//
// A Domain is mutable while it is being declared and must not be modified concurrently with
// Validate. Switching the strategy only affects later Validate calls.
type Domain[T any] struct {
	name     string
	bindings []binding[T]
	strategy Strategy
	logger   *zap.Logger
}

// Of creates a Domain validator for T using the CollectAll strategy unless configured otherwise.
func Of[T any](opts ...Option) *Domain[T] {
	o := newOptions[T](opts)
	return &Domain[T]{
		name:     o.name,
		bindings: []binding[T]{},
		strategy: o.strategy,
		logger:   o.logger,
	}
}

// Name returns the target name used in Results messages.
func (v *Domain[T]) Name() string { return v.name }

// Len returns the number of declared bindings.
func (v *Domain[T]) Len() int { return len(v.bindings) }

// Strategy returns the strategy the next Validate call will use.
func (v *Domain[T]) Strategy() Strategy { return v.strategy }

// And returns v unchanged; it only reads well in fluent declarations.
func (v *Domain[T]) And() *Domain[T] { return v }

// FailFast makes later Validate calls stop at the first failing binding.
func (v *Domain[T]) FailFast() *Domain[T] {
	v.strategy = FailFast
	return v
}

// CollectFailures makes later Validate calls evaluate every binding.
func (v *Domain[T]) CollectFailures() *Domain[T] {
	v.strategy = CollectAll
	return v
}

// Validate runs the active strategy over the declared bindings. The returned error reports
// misuse (nil target, binding without rule); data failures are in Results.
func (v *Domain[T]) Validate(target T) (*Results, error) {
	if IsNil(target) {
		return nil, ErrNilTarget
	}
	checks := make([]Check, len(v.bindings))
	for i, b := range v.bindings {
		checks[i] = func() (Outcome, error) { return b.check(target) }
	}
	res, err := v.strategy.Run(v.name, checks)
	if err != nil {
		return nil, err
	}
	logRun(v.logger, v.name, v.strategy, len(v.bindings), res)
	return res, nil
}

// Check validates target and converts failures into an *AggregatedError.
func (v *Domain[T]) Check(target T) error {
	res, err := v.Validate(target)
	if err != nil {
		return err
	}
	return res.Err()
}
