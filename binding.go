package govali

import "fmt"

// binding is a named rule bound to a part of T.
type binding[T any] interface {
	check(target T) (Outcome, error)
}

// FieldBinding attaches a Rule to a field read by an extractor. Obtain one via Field.
type FieldBinding[T, F any] struct {
	parent  *Domain[T]
	name    string
	extract func(T) F
	rule    Rule[F]
}

// Field registers a field binding on v and returns the handle used to attach its rule.
// It panics when name is empty or extract is nil.
func Field[T, F any](v *Domain[T], name string, extract func(T) F) *FieldBinding[T, F] {
	mustArgument(v != nil, "validator must not be nil")
	mustArgument(name != "", "field name must not be empty")
	mustArgument(extract != nil, "extractor function must not be nil")
	b := &FieldBinding[T, F]{parent: v, name: name, extract: extract}
	v.bindings = append(v.bindings, b)
	return b
}

// MustSatisfy requires the field to satisfy rule. Calling it again replaces the rule.
func (b *FieldBinding[T, F]) MustSatisfy(rule Rule[F]) *Domain[T] {
	mustArgument(rule != nil, "rule must not be nil")
	b.rule = rule
	return b.parent
}

// IfPresent applies rule only when the field value is not nil.
func (b *FieldBinding[T, F]) IfPresent(rule Rule[F]) *Domain[T] {
	mustArgument(rule != nil, "rule must not be nil")
	b.rule = optional(rule)
	return b.parent
}

func (b *FieldBinding[T, F]) check(target T) (Outcome, error) {
	if b.rule == nil {
		return Outcome{}, fmt.Errorf("%w: field %q", ErrUnboundBinding, b.name)
	}
	o := b.rule(b.extract(target))
	if o.Invalid() {
		return o.WithField(b.name), nil
	}
	return o, nil
}

// NestedBinding validates a field with a whole sub-validator. Obtain one via Nested.
type NestedBinding[T, F any] struct {
	parent   *Domain[T]
	name     string
	extract  func(T) F
	sub      *Domain[F]
	required bool
}

// Nested registers a nested binding on v. It panics when name is empty or extract is nil.
func Nested[T, F any](v *Domain[T], name string, extract func(T) F) *NestedBinding[T, F] {
	mustArgument(v != nil, "validator must not be nil")
	mustArgument(name != "", "field name must not be empty")
	mustArgument(extract != nil, "extractor function must not be nil")
	b := &NestedBinding[T, F]{parent: v, name: name, extract: extract}
	v.bindings = append(v.bindings, b)
	return b
}

// MustSatisfy requires a non-nil nested value that passes sub.
func (b *NestedBinding[T, F]) MustSatisfy(sub *Domain[F]) *Domain[T] {
	mustArgument(sub != nil, "validator for the nested type must not be nil")
	b.sub = sub
	b.required = true
	return b.parent
}

// IfPresent validates the nested value with sub only when it is not nil.
func (b *NestedBinding[T, F]) IfPresent(sub *Domain[F]) *Domain[T] {
	mustArgument(sub != nil, "validator for the nested type must not be nil")
	b.sub = sub
	b.required = false
	return b.parent
}

func (b *NestedBinding[T, F]) check(target T) (Outcome, error) {
	if b.sub == nil {
		return Outcome{}, fmt.Errorf("%w: nested field %q", ErrUnboundBinding, b.name)
	}
	v := b.extract(target)
	if IsNil(v) {
		if b.required {
			return FailCode(CodeNotNull, "must not be null").WithField(b.name), nil
		}
		return Ok(), nil
	}
	res, err := b.sub.Validate(v)
	if err != nil {
		return Outcome{}, fmt.Errorf("nested field %q: %w", b.name, err)
	}
	if res.HasFailures() {
		return FailCode(CodeNested, res.ErrorMessage(), "target", res.Target(), "failures", res.Len()).
			withNested(res).WithField(b.name), nil
	}
	return Ok(), nil
}

// ParamBinding attaches a Rule to a captured parameter value. P is the owning
// *Constructor or *Builder returned for chaining.
type ParamBinding[P any, F any] struct {
	parent   P
	name     string
	value    F
	delegate *ValueValidator[F]
}

// MustSatisfy requires the parameter to satisfy rule. Calling it again replaces the rule.
func (b *ParamBinding[P, F]) MustSatisfy(rule Rule[F]) P {
	b.delegate = Value(b.name, rule)
	return b.parent
}

// IfPresent applies rule only when the parameter is not nil.
func (b *ParamBinding[P, F]) IfPresent(rule Rule[F]) P {
	b.delegate = OptionalValue(b.name, rule)
	return b.parent
}

func (b *ParamBinding[P, F]) check() (Outcome, error) {
	if b.delegate == nil {
		return Outcome{}, fmt.Errorf("%w: parameter %q", ErrUnboundBinding, b.name)
	}
	return b.delegate.Validate(b.value), nil
}
