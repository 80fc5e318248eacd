package govali

// Rule is a pure predicate over a value of type V.
type Rule[V any] func(V) Outcome

// From builds a Rule from a boolean predicate; a false result fails with cause.
func From[V any](pred func(V) bool, cause string) Rule[V] {
	mustArgument(pred != nil, "predicate must not be nil")
	return func(v V) Outcome {
		if pred(v) {
			return Ok()
		}
		return Fail(cause)
	}
}

// FromCode is like From but tags failures with a catalogue code and params.
func FromCode[V any](pred func(V) bool, code, cause string, kv ...any) Rule[V] {
	mustArgument(pred != nil, "predicate must not be nil")
	mustArgument(len(kv)%2 == 0, "params must be key/value pairs")
	return func(v V) Outcome {
		if pred(v) {
			return Ok()
		}
		return FailCode(code, cause, kv...)
	}
}

// Test evaluates the rule against v.
func (r Rule[V]) Test(v V) Outcome { return r(v) }

// And returns a Rule that fails with the receiver's outcome when the receiver fails and
// otherwise yields other's outcome. other is not evaluated when the receiver fails.
func (r Rule[V]) And(other Rule[V]) Rule[V] {
	mustArgument(other != nil, "rule must not be nil")
	return func(v V) Outcome {
		if first := r(v); first.Invalid() {
			return first
		}
		return other(v)
	}
}

// Or returns a Rule that passes with the receiver's outcome when the receiver passes and
// otherwise yields other's outcome. other is not evaluated when the receiver passes.
func (r Rule[V]) Or(other Rule[V]) Rule[V] {
	mustArgument(other != nil, "rule must not be nil")
	return func(v V) Outcome {
		if first := r(v); first.Valid() {
			return first
		}
		return other(v)
	}
}

// Deref lifts a value rule to pointers. A nil pointer fails with "must not be null";
// combine with IfPresent to treat nil as absent instead.
func Deref[V any](r Rule[V]) Rule[*V] {
	mustArgument(r != nil, "rule must not be nil")
	return func(p *V) Outcome {
		if p == nil {
			return FailCode(CodeNotNull, "must not be null")
		}
		return r(*p)
	}
}

// optional derives IsNil(v) OR r(v).
func optional[V any](r Rule[V]) Rule[V] {
	return func(v V) Outcome {
		if IsNil(v) {
			return Ok()
		}
		return r(v)
	}
}
