package govali

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/reoring/govali/i18n"
)

// UnknownField is the field name carried by an Outcome that no binding has tagged yet.
const UnknownField = "Unknown"

// Outcome codes (exported consts for IDE completion and type safety by convention).
// They key the i18n catalogue and are stable across releases.
const (
	CodeInvalid        = "invalid" // Fail without a more specific code.
	CodeRequired       = "required"
	CodeBlank          = "blank"
	CodeNotNull        = "not_null"
	CodeInvalidType    = "invalid_type"
	CodeLength         = "length"
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodeContains       = "contains"
	CodePrefix         = "prefix"
	CodeSuffix         = "suffix"
	CodePattern        = "pattern"
	CodePatternFind    = "pattern_find"
	CodeEqual          = "equal"
	CodeEqualTo        = "equal_to"
	CodeTooBig         = "too_big"
	CodeTooSmall       = "too_small"
	CodeAtMost         = "at_most"
	CodeAtLeast        = "at_least"
	CodeEven           = "even"
	CodeOdd            = "odd"
	CodeEmptyList      = "empty_collection"
	CodeSize           = "size"
	CodeMissingElement = "missing_element"
	CodeAllMatch       = "all_match"
	CodeAnyMatch       = "any_match"
	CodeNoneMatch      = "none_match"
	CodeNested         = "nested"
)

// Outcome is the verdict of a Rule: valid, or invalid with a cause and the field it belongs to.
// Outcomes are values; every "modification" returns a new Outcome.
//
// The zero Outcome is invalid with an empty cause. Rules must build outcomes with Ok or one
// of the Fail constructors.
type Outcome struct {
	valid  bool
	field  string
	cause  string
	code   string
	params map[string]any
	nested *Results // set for CodeNested failures
}

// Ok returns a valid Outcome.
func Ok() Outcome { return Outcome{valid: true, field: UnknownField} }

// Fail returns an invalid Outcome for an unnamed field.
func Fail(cause string) Outcome {
	return Outcome{field: UnknownField, cause: cause, code: CodeInvalid}
}

// FailField returns an invalid Outcome already tagged with a field name.
func FailField(cause, field string) Outcome {
	return Outcome{field: field, cause: cause, code: CodeInvalid}
}

// FailCode returns an invalid Outcome with a catalogue code and key/value params
// (e.g. FailCode(CodeTooShort, "must have more than 3 chars", "n", 3)).
// It panics when kv has an odd length.
func FailCode(code, cause string, kv ...any) Outcome {
	mustArgument(len(kv)%2 == 0, "params must be key/value pairs")
	var params map[string]any
	if len(kv) > 0 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Outcome{field: UnknownField, cause: cause, code: code, params: params}
}

// Valid reports whether the rule was satisfied.
func (o Outcome) Valid() bool { return o.valid }

// Invalid is the negation of Valid.
func (o Outcome) Invalid() bool { return !o.valid }

// Field returns the field name, UnknownField when untagged.
func (o Outcome) Field() string {
	if o.field == "" {
		return UnknownField
	}
	return o.field
}

// Cause returns the failure description; empty for valid outcomes.
func (o Outcome) Cause() string { return o.cause }

// Code returns the catalogue code; empty for valid outcomes.
func (o Outcome) Code() string { return o.code }

// Params returns a copy of the structured parameters attached by the rule.
func (o Outcome) Params() map[string]any {
	if len(o.params) == 0 {
		return nil
	}
	out := make(map[string]any, len(o.params))
	for k, v := range o.params {
		out[k] = v
	}
	return out
}

// WithField returns a copy of o tagged with the given field name.
func (o Outcome) WithField(name string) Outcome {
	o.field = name
	return o
}

func (o Outcome) withNested(r *Results) Outcome {
	o.nested = r
	return o
}

// ErrorMessage renders the single-outcome message used by FieldError.
func (o Outcome) ErrorMessage() string {
	return fmt.Sprintf("The field: %q is invalid: %s", o.Field(), o.cause)
}

// Err returns nil for a valid outcome and a *FieldError otherwise.
func (o Outcome) Err() error {
	if o.valid {
		return nil
	}
	return &FieldError{Field: o.Field(), Cause: o.cause, Code: o.code}
}

// Localized returns the cause rendered by the current i18n translator, falling back to Cause
// when the catalogue does not know the code. Nested failures re-render the nested results.
func (o Outcome) Localized() string {
	if o.valid {
		return ""
	}
	if o.code == CodeNested {
		if o.nested == nil {
			return o.cause
		}
		return o.nested.LocalizedMessage()
	}
	msg := i18n.T(o.code, stringParams(o.params))
	if msg == "" || msg == o.code {
		return o.cause
	}
	return msg
}

type outcomeJSON struct {
	Valid  bool           `json:"valid"`
	Field  string         `json:"field"`
	Cause  string         `json:"cause,omitempty"`
	Code   string         `json:"code,omitempty"`
	Params map[string]any `json:"params,omitempty"`
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(outcomeJSON{
		Valid:  o.valid,
		Field:  o.Field(),
		Cause:  o.cause,
		Code:   o.code,
		Params: o.params,
	})
}

func (o Outcome) String() string {
	if o.valid {
		return "ok"
	}
	return o.ErrorMessage()
}

func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = fmt.Sprint(v)
	}
	return out
}
