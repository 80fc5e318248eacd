package govali

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/multierr"

	"github.com/reoring/govali/i18n"
)

// Results collects the failed Outcomes of one validation run in evaluation order.
type Results struct {
	target   string
	failures []Outcome
}

// NewResults returns an empty collection for the named target type.
func NewResults(target string) *Results {
	return &Results{target: target}
}

// Add appends o when it is invalid; valid outcomes are discarded.
func (r *Results) Add(o Outcome) {
	if o.Invalid() {
		r.failures = append(r.failures, o)
	}
}

// Target returns the name of the validated type.
func (r *Results) Target() string { return r.target }

// HasFailures reports whether at least one failure was added.
func (r *Results) HasFailures() bool { return len(r.failures) > 0 }

// Len returns the number of failures.
func (r *Results) Len() int { return len(r.failures) }

// Failures returns a copy of the failed outcomes.
func (r *Results) Failures() []Outcome {
	out := make([]Outcome, len(r.failures))
	copy(out, r.failures)
	return out
}

// Has reports whether any failure belongs to field.
func (r *Results) Has(field string) bool {
	for _, o := range r.failures {
		if o.Field() == field {
			return true
		}
	}
	return false
}

// Fields returns the distinct failing field names in first-seen order.
func (r *Results) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(r.failures))
	for _, o := range r.failures {
		if !seen[o.Field()] {
			fields = append(fields, o.Field())
			seen[o.Field()] = true
		}
	}
	return fields
}

// ErrorMessage renders a header line followed by one line per failure, each newline-terminated.
func (r *Results) ErrorMessage() string {
	return r.render(r.header(), Outcome.Cause)
}

// LocalizedMessage is ErrorMessage with the header and every failure rendered by the current
// i18n translator.
func (r *Results) LocalizedMessage() string {
	header := i18n.T(CodeNested, map[string]string{
		"target":   r.target,
		"failures": strconv.Itoa(len(r.failures)),
	})
	if header == "" || header == CodeNested {
		header = r.header()
	}
	return r.render(header, Outcome.Localized)
}

func (r *Results) header() string {
	return fmt.Sprintf("Validation for %s failed with %d error(s):", r.target, len(r.failures))
}

func (r *Results) render(header string, msg func(Outcome) string) string {
	b := &strings.Builder{}
	b.WriteString(header)
	b.WriteByte('\n')
	for _, o := range r.failures {
		fmt.Fprintf(b, " - Field '%s': %s\n", o.Field(), msg(o))
	}
	return b.String()
}

// Errors combines every failure's *FieldError; nil when there are none.
func (r *Results) Errors() error {
	var err error
	for _, o := range r.failures {
		err = multierr.Append(err, o.Err())
	}
	return err
}

// Err returns nil when there are no failures, otherwise an *AggregatedError whose message is
// ErrorMessage.
func (r *Results) Err() error {
	if !r.HasFailures() {
		return nil
	}
	return &AggregatedError{
		Target:   r.target,
		Message:  r.ErrorMessage(),
		Failures: r.Failures(),
		errs:     r.Errors(),
	}
}

type resultsJSON struct {
	Target   string    `json:"target"`
	Valid    bool      `json:"valid"`
	Failures []Outcome `json:"failures"`
}

func (r *Results) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultsJSON{
		Target:   r.target,
		Valid:    !r.HasFailures(),
		Failures: r.Failures(),
	})
}
