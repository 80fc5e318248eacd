package ruleset

import (
	"fmt"
	"maps"
	"slices"

	"github.com/reoring/govali"
	"github.com/reoring/govali/rules"
)

// factory builds a dynamically typed rule from its argument (nil when none was given).
type factory func(arg any) (govali.Rule[any], error)

var registry map[string]factory

func init() {
	registry = map[string]factory{
		// strings
		"notEmpty": plain("notEmpty", asString(rules.NotEmpty())),
		"notBlank": plain("notBlank", asString(rules.NotBlank())),
		"exactly":  withInt("exactly", func(n int64) govali.Rule[any] { return asString(rules.Exactly(int(n))) }),
		"moreThan": withInt("moreThan", func(n int64) govali.Rule[any] { return asString(rules.MoreThan(int(n))) }),
		"lessThan": withInt("lessThan", func(n int64) govali.Rule[any] { return asString(rules.LessThan(int(n))) }),
		"between": withIntPair("between", func(lo, hi int64) govali.Rule[any] {
			return asString(rules.Between(int(lo), int(hi)))
		}),
		"contains":      withString("contains", func(s string) govali.Rule[any] { return asString(rules.Contains(s)) }),
		"containsFold":  withString("containsFold", func(s string) govali.Rule[any] { return asString(rules.ContainsFold(s)) }),
		"hasPrefix":     withString("hasPrefix", func(s string) govali.Rule[any] { return asString(rules.HasPrefix(s)) }),
		"hasPrefixFold": withString("hasPrefixFold", func(s string) govali.Rule[any] { return asString(rules.HasPrefixFold(s)) }),
		"hasSuffix":     withString("hasSuffix", func(s string) govali.Rule[any] { return asString(rules.HasSuffix(s)) }),
		"hasSuffixFold": withString("hasSuffixFold", func(s string) govali.Rule[any] { return asString(rules.HasSuffixFold(s)) }),
		"matches":       withPattern("matches", rules.Matches),
		"containsMatch": withPattern("containsMatch", rules.ContainsMatch),

		// integers
		"equals":      withInt("equals", func(n int64) govali.Rule[any] { return asInt(rules.Equals(n)) }),
		"lowerThan":   withInt("lowerThan", func(n int64) govali.Rule[any] { return asInt(rules.LowerThan(n)) }),
		"greaterThan": withInt("greaterThan", func(n int64) govali.Rule[any] { return asInt(rules.GreaterThan(n)) }),
		"atMost":      withInt("atMost", func(n int64) govali.Rule[any] { return asInt(rules.AtMost(n)) }),
		"atLeast":     withInt("atLeast", func(n int64) govali.Rule[any] { return asInt(rules.AtLeast(n)) }),
		"inBetween": withIntPair("inBetween", func(lo, hi int64) govali.Rule[any] {
			return asInt(rules.InBetween(lo, hi))
		}),
		"inBetweenInclusive": withIntPair("inBetweenInclusive", func(lo, hi int64) govali.Rule[any] {
			return asInt(rules.InBetweenInclusive(lo, hi))
		}),
		"even": plain("even", asInt(rules.Even[int64]())),
		"odd":  plain("odd", asInt(rules.Odd[int64]())),

		// objects
		"notNull": plain("notNull", rules.NotNull[any]()),
		"equalTo": equalTo,

		// collections
		"sliceNotEmpty": plain("sliceNotEmpty", asList(rules.SliceNotEmpty[any]())),
		"sizeBetween": withIntPair("sizeBetween", func(lo, hi int64) govali.Rule[any] {
			return asList(rules.SizeBetween[any](int(lo), int(hi)))
		}),
		"containsElement": containsElement,
		"allMatch":        withElementRule("allMatch", rules.AllMatch[any]),
		"anyMatch":        withElementRule("anyMatch", rules.AnyMatch[any]),
		"noneMatch":       withElementRule("noneMatch", rules.NoneMatch[any]),
	}
}

// Names lists the rule names a rule set may reference, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Build resolves one rule reference.
func Build(spec RuleSpec) (govali.Rule[any], error) {
	f, ok := registry[spec.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, spec.Name)
	}
	return f(spec.Arg)
}

func typeMismatch(kind string) govali.Outcome {
	return govali.FailCode(govali.CodeInvalidType, "must be a "+kind, "type", kind)
}

func asString(r govali.Rule[string]) govali.Rule[any] {
	return func(v any) govali.Outcome {
		s, ok := v.(string)
		if !ok {
			return typeMismatch("string")
		}
		return r(s)
	}
}

func asInt(r govali.Rule[int64]) govali.Rule[any] {
	return func(v any) govali.Outcome {
		n, ok := toInt64(v)
		if !ok {
			return typeMismatch("whole number")
		}
		return r(n)
	}
}

func asList(r govali.Rule[[]any]) govali.Rule[any] {
	return func(v any) govali.Outcome {
		list, ok := v.([]any)
		if !ok {
			return typeMismatch("list")
		}
		return r(list)
	}
}

// plain is the factory of rules that take no argument.
func plain(name string, r govali.Rule[any]) factory {
	return func(arg any) (govali.Rule[any], error) {
		if arg != nil {
			return nil, fmt.Errorf("%w: %s takes no argument, got %v", ErrBadArgument, name, arg)
		}
		return r, nil
	}
}

func withInt(name string, build func(int64) govali.Rule[any]) factory {
	return func(arg any) (govali.Rule[any], error) {
		n, err := argInt(name, arg)
		if err != nil {
			return nil, err
		}
		return build(n), nil
	}
}

func withIntPair(name string, build func(lo, hi int64) govali.Rule[any]) factory {
	return func(arg any) (govali.Rule[any], error) {
		lo, hi, err := argIntPair(name, arg)
		if err != nil {
			return nil, err
		}
		return build(lo, hi), nil
	}
}

func withString(name string, build func(string) govali.Rule[any]) factory {
	return func(arg any) (govali.Rule[any], error) {
		s, err := argString(name, arg)
		if err != nil {
			return nil, err
		}
		return build(s), nil
	}
}

// withPattern turns the regexp compile panic of the rules package into an error.
func withPattern(name string, build func(string) govali.Rule[string]) factory {
	return func(arg any) (r govali.Rule[any], err error) {
		pattern, err := argString(name, arg)
		if err != nil {
			return nil, err
		}
		defer func() {
			if p := recover(); p != nil {
				r, err = nil, fmt.Errorf("%w: %s: %v", ErrBadArgument, name, p)
			}
		}()
		return asString(build(pattern)), nil
	}
}

// withElementRule builds a slice predicate rule whose argument is itself a rule reference,
// for example {allMatch: {greaterThan: 0}}.
func withElementRule(name string, build func(func(any) bool) govali.Rule[[]any]) factory {
	return func(arg any) (govali.Rule[any], error) {
		if err := argRequired(name, arg); err != nil {
			return nil, err
		}
		spec, err := specFromValue(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		elem, err := Build(spec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return asList(build(func(e any) bool { return elem(e).Valid() })), nil
	}
}

func equalTo(arg any) (govali.Rule[any], error) {
	if err := argRequired("equalTo", arg); err != nil {
		return nil, err
	}
	return govali.FromCode(func(v any) bool { return sameValue(v, arg) },
		govali.CodeEqualTo, fmt.Sprintf("must be equal to \"%v\"", arg), "v", arg), nil
}

func containsElement(arg any) (govali.Rule[any], error) {
	if err := argRequired("containsElement", arg); err != nil {
		return nil, err
	}
	return asList(govali.FromCode(func(list []any) bool { return containsValue(list, arg) },
		govali.CodeMissingElement, fmt.Sprintf("Collection must contain Object \"%v\"", arg), "v", arg)), nil
}
