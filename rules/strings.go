package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/reoring/govali"
)

// NotEmpty requires a non-empty string.
func NotEmpty() govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return s != "" },
		govali.CodeRequired, "must not be empty")
}

// NotBlank requires a string with at least one non-whitespace character.
func NotBlank() govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return strings.TrimSpace(s) != "" },
		govali.CodeBlank, "must not be blank")
}

// Exactly requires exactly n characters (runes).
func Exactly(n int) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return utf8.RuneCountInString(s) == n },
		govali.CodeLength, fmt.Sprintf("must have exactly %d chars", n), "n", n)
}

// MoreThan requires strictly more than n characters.
func MoreThan(n int) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return utf8.RuneCountInString(s) > n },
		govali.CodeTooShort, fmt.Sprintf("must have more than %d chars", n), "n", n)
}

// LessThan requires strictly fewer than n characters.
func LessThan(n int) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return utf8.RuneCountInString(s) < n },
		govali.CodeTooLong, fmt.Sprintf("must have less than %d chars", n), "n", n)
}

// Between requires a length strictly between min and max.
func Between(min, max int) govali.Rule[string] {
	return MoreThan(min).And(LessThan(max))
}

// Contains requires sub to occur in the string.
func Contains(sub string) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return strings.Contains(s, sub) },
		govali.CodeContains, fmt.Sprintf("must contain \"%s\"", sub), "s", sub)
}

// ContainsFold is Contains under Unicode case folding.
func ContainsFold(sub string) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return strings.Contains(fold(s), fold(sub)) },
		govali.CodeContains, fmt.Sprintf("must contain \"%s\"", sub), "s", sub)
}

// HasPrefix requires the string to start with prefix.
func HasPrefix(prefix string) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return strings.HasPrefix(s, prefix) },
		govali.CodePrefix, "must start with "+prefix, "s", prefix)
}

// HasPrefixFold is HasPrefix under Unicode case folding.
func HasPrefixFold(prefix string) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return strings.HasPrefix(fold(s), fold(prefix)) },
		govali.CodePrefix, "must start with "+prefix, "s", prefix)
}

// HasSuffix requires the string to end with suffix.
func HasSuffix(suffix string) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return strings.HasSuffix(s, suffix) },
		govali.CodeSuffix, "must end with "+suffix, "s", suffix)
}

// HasSuffixFold is HasSuffix under Unicode case folding.
func HasSuffixFold(suffix string) govali.Rule[string] {
	return govali.FromCode(func(s string) bool { return strings.HasSuffix(fold(s), fold(suffix)) },
		govali.CodeSuffix, "must end with "+suffix, "s", suffix)
}

// Matches requires the whole string to match pattern. It panics if pattern does not compile.
func Matches(pattern string) govali.Rule[string] {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return govali.FromCode(re.MatchString,
		govali.CodePattern, fmt.Sprintf("must fully match regex '%s'", pattern), "pattern", pattern)
}

// ContainsMatch requires some substring to match pattern. It panics if pattern does not compile.
func ContainsMatch(pattern string) govali.Rule[string] {
	re := regexp.MustCompile(pattern)
	return govali.FromCode(re.MatchString,
		govali.CodePatternFind, fmt.Sprintf("must contain substring matching regex '%s'", pattern), "pattern", pattern)
}

// fold applies full Unicode case folding; a Caser is stateful, so one is made per call.
func fold(s string) string { return cases.Fold().String(s) }
