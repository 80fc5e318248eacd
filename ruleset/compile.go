package ruleset

import (
	"fmt"
	"slices"

	"github.com/reoring/govali"
	"github.com/reoring/govali/rules"
)

// DefaultTarget names the validated document when the rule set omits target.
const DefaultTarget = "Document"

// Document is the decoded form every compiled rule set validates.
type Document = map[string]any

// Compile builds a Domain from the rule set. Its own target and strategy are applied first, so
// opts may override them. Required fields bind with MustSatisfy, optional ones with IfPresent,
// and fields with sub-fields are additionally validated by a nested Domain of their own.
func (s *Set) Compile(opts ...govali.Option) (*govali.Domain[Document], error) {
	target := s.Target
	if target == "" {
		target = DefaultTarget
	}
	strategy := govali.CollectAll
	if s.Strategy != "" {
		var err error
		if strategy, err = govali.ParseStrategy(s.Strategy); err != nil {
			return nil, fmt.Errorf("ruleset: %w", err)
		}
	}
	base := append([]govali.Option{govali.WithName(target), govali.WithStrategy(strategy)}, opts...)
	return compileFields(s.Fields, "", base)
}

func compileFields(fields []Field, prefix string, opts []govali.Option) (*govali.Domain[Document], error) {
	v := govali.Of[Document](opts...)
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		path := prefix + f.Name
		if f.Name == "" {
			return nil, fmt.Errorf("ruleset: field under %q has no name", prefix)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("ruleset: field %q declared twice", path)
		}
		seen[f.Name] = true

		if err := bindRules(v, f, path); err != nil {
			return nil, err
		}
		if len(f.Fields) == 0 {
			continue
		}
		sub, err := compileFields(f.Fields, path+".", append(slices.Clone(opts), govali.WithName(f.Name)))
		if err != nil {
			return nil, err
		}
		// presence and type are checked by the field's own binding
		name := f.Name
		govali.Nested(v, name, func(d Document) Document {
			m, _ := d[name].(map[string]any)
			return m
		}).IfPresent(sub)
	}
	return v, nil
}

// bindRules attaches the field's own rules. Nested objects additionally get an object type check,
// and a required field without rules still has to be present.
func bindRules(v *govali.Domain[Document], f Field, path string) error {
	var rule govali.Rule[any]
	if len(f.Fields) > 0 {
		rule = isObject
	}
	for _, spec := range f.Rules {
		r, err := Build(spec)
		if err != nil {
			return fmt.Errorf("ruleset: field %q: rule %s: %w", path, spec, err)
		}
		if rule == nil {
			rule = r
		} else {
			rule = rule.And(r)
		}
	}

	name := f.Name
	fb := govali.Field(v, name, func(d Document) any { return d[name] })
	switch {
	case f.IsRequired() && rule == nil:
		fb.MustSatisfy(rules.NotNull[any]())
	case f.IsRequired():
		fb.MustSatisfy(rules.NotNull[any]().And(rule))
	case rule == nil:
		fb.IfPresent(func(any) govali.Outcome { return govali.Ok() })
	default:
		fb.IfPresent(rule)
	}
	return nil
}

func isObject(v any) govali.Outcome {
	if _, ok := v.(map[string]any); ok {
		return govali.Ok()
	}
	return typeMismatch("map")
}
