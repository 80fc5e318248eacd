// Package ruleset loads declarative validation rules from YAML or JSON and compiles them into
// a govali.Domain over decoded documents.
//
// A rule set file looks like:
//
//	target: Person
//	strategy: collectAll
//	fields:
//	  - name: name
//	    rules: [notEmpty, {lessThan: 64}]
//	  - name: age
//	    rules: [{inBetweenInclusive: [0, 150]}]
//	  - name: nickname
//	    required: false
//	    rules: [notBlank]
//	  - name: address
//	    fields:
//	      - name: zip
//	        rules: [{matches: "[0-9]{5}"}]
package ruleset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownRule reports a rule name missing from the registry.
	ErrUnknownRule = errors.New("ruleset: unknown rule")
	// ErrBadArgument reports a rule argument of the wrong shape or type.
	ErrBadArgument = errors.New("ruleset: bad rule argument")
	// ErrUnknownFormat reports a format or file extension that is neither JSON nor YAML.
	ErrUnknownFormat = errors.New("ruleset: unknown format")
)

// Format selects the codec used for rule sets and documents.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Set is a parsed rule set.
type Set struct {
	Target   string  `json:"target" yaml:"target"`
	Strategy string  `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Fields   []Field `json:"fields" yaml:"fields"`
}

// Field declares the rules for one document key. Fields with sub-fields validate a nested object.
type Field struct {
	Name     string     `json:"name" yaml:"name"`
	Required *bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Rules    []RuleSpec `json:"rules,omitempty" yaml:"rules,omitempty"`
	Fields   []Field    `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// IsRequired reports whether the field must be present; fields are required unless stated otherwise.
func (f Field) IsRequired() bool { return f.Required == nil || *f.Required }

// RuleSpec is one rule reference: a bare name (notEmpty) or a single-key map (greaterThan: 0).
type RuleSpec struct {
	Name string
	Arg  any
}

func (r RuleSpec) String() string {
	if r.Arg == nil {
		return r.Name
	}
	return fmt.Sprintf("%s(%v)", r.Name, r.Arg)
}

// UnmarshalJSON accepts "name" or {"name": arg}.
func (r *RuleSpec) UnmarshalJSON(data []byte) error {
	var raw any
	if err := decodeJSON(data, &raw); err != nil {
		return err
	}
	spec, err := specFromValue(raw)
	if err != nil {
		return err
	}
	*r = spec
	return nil
}

// UnmarshalYAML accepts a scalar name or a single-key mapping.
func (r *RuleSpec) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	spec, err := specFromValue(normalizeValue(raw))
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = spec
	return nil
}

// MarshalJSON writes the same shapes UnmarshalJSON reads.
func (r RuleSpec) MarshalJSON() ([]byte, error) {
	if r.Arg == nil {
		return json.Marshal(r.Name)
	}
	return json.Marshal(map[string]any{r.Name: r.Arg})
}

func specFromValue(v any) (RuleSpec, error) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return RuleSpec{}, fmt.Errorf("%w: empty rule name", ErrBadArgument)
		}
		return RuleSpec{Name: t}, nil
	case map[string]any:
		if len(t) != 1 {
			return RuleSpec{}, fmt.Errorf("%w: rule map must have exactly one key, got %d", ErrBadArgument, len(t))
		}
		for name, arg := range t {
			return RuleSpec{Name: name, Arg: arg}, nil
		}
	}
	return RuleSpec{}, fmt.Errorf("%w: rule must be a name or a single-key map, got %T", ErrBadArgument, v)
}

// Parse decodes a rule set. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Set, error) {
	var s Set
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("ruleset: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ruleset: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &s, nil
}

// Load reads and parses the rule set at path, choosing the codec from its extension.
func Load(path string) (*Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: %w", err)
	}
	return Parse(data, format)
}

// decodeJSON keeps numbers as json.Number so integers beyond 2^53 survive.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// DecodeDocument decodes a JSON or YAML object into a map. The root must be an object.
// JSON numbers are kept as json.Number.
func DecodeDocument(data []byte, format Format) (map[string]any, error) {
	var raw any
	switch format {
	case FormatJSON:
		if err := decodeJSON(data, &raw); err != nil {
			return nil, fmt.Errorf("ruleset: decode json document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("ruleset: decode yaml document: %w", err)
		}
		raw = normalizeValue(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("ruleset: document root must be an object, got %T", raw)
	}
	return m, nil
}
