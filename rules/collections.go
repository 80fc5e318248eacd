package rules

import (
	"fmt"
	"slices"

	"github.com/reoring/govali"
)

// SliceNotEmpty requires at least one element; nil slices are empty.
func SliceNotEmpty[E any]() govali.Rule[[]E] {
	return govali.FromCode(func(s []E) bool { return len(s) > 0 },
		govali.CodeEmptyList, "Collection must not be empty")
}

// SizeBetween requires min < len(s) < max.
func SizeBetween[E any](min, max int) govali.Rule[[]E] {
	return govali.FromCode(func(s []E) bool { return len(s) > min && len(s) < max },
		govali.CodeSize, fmt.Sprintf("Size must be greater than %d and less than %d", min, max),
		"min", min, "max", max)
}

// ContainsElement requires want to be one of the elements.
func ContainsElement[E comparable](want E) govali.Rule[[]E] {
	return govali.FromCode(func(s []E) bool { return slices.Contains(s, want) },
		govali.CodeMissingElement, fmt.Sprintf("Collection must contain Object \"%v\"", want), "v", want)
}

// AllMatch requires every element to satisfy pred. Empty slices pass.
func AllMatch[E any](pred func(E) bool) govali.Rule[[]E] {
	mustPredicate(pred)
	return govali.FromCode(func(s []E) bool {
		for _, e := range s {
			if !pred(e) {
				return false
			}
		}
		return true
	}, govali.CodeAllMatch, "All elements must match the Predicate")
}

// AnyMatch requires at least one element to satisfy pred. Empty slices fail.
func AnyMatch[E any](pred func(E) bool) govali.Rule[[]E] {
	mustPredicate(pred)
	return govali.FromCode(func(s []E) bool {
		return slices.ContainsFunc(s, pred)
	}, govali.CodeAnyMatch, "At least one element must match the Predicate")
}

// NoneMatch requires no element to satisfy pred. Empty slices pass.
func NoneMatch[E any](pred func(E) bool) govali.Rule[[]E] {
	mustPredicate(pred)
	return govali.FromCode(func(s []E) bool {
		return !slices.ContainsFunc(s, pred)
	}, govali.CodeNoneMatch, "No element should match the predicate")
}

func mustPredicate[E any](pred func(E) bool) {
	if pred == nil {
		panic(fmt.Errorf("%w: predicate must not be nil", govali.ErrInvalidArgument))
	}
}
