package govali

const defaultValueName = "Value"

// ValueValidator validates a single named value outside of any object.
type ValueValidator[V any] struct {
	name     string
	rule     Rule[V]
	optional bool
}

// Value returns a validator requiring values to satisfy rule. An empty name means "Value".
func Value[V any](name string, rule Rule[V]) *ValueValidator[V] {
	return newValueValidator(name, rule, false)
}

// OptionalValue is like Value but nil values pass without evaluating rule.
func OptionalValue[V any](name string, rule Rule[V]) *ValueValidator[V] {
	return newValueValidator(name, rule, true)
}

func newValueValidator[V any](name string, rule Rule[V], optional bool) *ValueValidator[V] {
	mustArgument(rule != nil, "rule must not be nil")
	if name == "" {
		name = defaultValueName
	}
	return &ValueValidator[V]{name: name, rule: rule, optional: optional}
}

// Name returns the target name used in Results messages.
func (vv *ValueValidator[V]) Name() string { return vv.name }

// Validate runs the rule; failures are tagged with the validator's name.
func (vv *ValueValidator[V]) Validate(v V) Outcome {
	if vv.optional && IsNil(v) {
		return Ok()
	}
	o := vv.rule(v)
	if o.Invalid() {
		return o.WithField(vv.name)
	}
	return o
}

// Check returns nil for a valid value and a *FieldError otherwise.
func (vv *ValueValidator[V]) Check(v V) error { return vv.Validate(v).Err() }
