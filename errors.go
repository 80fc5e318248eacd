package govali

import (
	"errors"
	"fmt"
)

// Configuration errors. They signal misuse of the library, never invalid data.
var (
	// ErrInvalidArgument reports an empty name, nil extractor, nil rule or nil nested validator.
	ErrInvalidArgument = errors.New("govali: invalid argument")
	// ErrUnboundBinding reports a field or parameter that never received a rule.
	ErrUnboundBinding = errors.New("govali: binding has no rule attached")
	// ErrNilTarget reports a nil object handed to Validate.
	ErrNilTarget = errors.New("govali: object to validate must not be nil")
	// ErrUnknownStrategy reports a Strategy value or name outside FailFast/CollectAll.
	ErrUnknownStrategy = errors.New("govali: unknown strategy")
)

// FieldError is the error form of a single invalid Outcome.
type FieldError struct {
	Field string
	Cause string
	Code  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("The field: %q is invalid: %s", e.Field, e.Cause)
}

// AggregatedError is returned by Check and Results.Err when at least one binding failed.
// Error() renders the Results message verbatim; Unwrap exposes the per-field errors.
type AggregatedError struct {
	Target   string
	Message  string
	Failures []Outcome
	errs     error
}

func (e *AggregatedError) Error() string { return e.Message }

// Unwrap returns the multierr combination of every failure's *FieldError, so errors.As
// finds the first one.
func (e *AggregatedError) Unwrap() error { return e.errs }

// AsAggregated extracts an *AggregatedError using errors.As internally.
func AsAggregated(err error) (*AggregatedError, bool) {
	if err == nil {
		return nil, false
	}
	var agg *AggregatedError
	if errors.As(err, &agg) {
		return agg, true
	}
	return nil, false
}

func invalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

// mustArgument panics with an ErrInvalidArgument-wrapping error when ok is false.
// Declaration-time misuse is a programming error, in the spirit of regexp.MustCompile.
func mustArgument(ok bool, msg string) {
	if !ok {
		panic(invalidArgument(msg))
	}
}
