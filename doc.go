// Package govali provides:
//
//   - Composable Rules (pure predicates with short-circuit And/Or) producing immutable Outcomes
//   - Named field / parameter bindings over typed extractor functions (no reflection on targets)
//   - Fail-fast and collect-all aggregation into a Results collection with a stable message format
//   - Fluent facades for validating domain objects (Domain) and constructor arguments (Constructor)
//
// Design policy:
//
//   - Keep the core (Rule/Outcome/bindings/Strategy/Results/facades) in the root package.
//   - Place ready-made rule factories under rules/, the message catalogue under i18n/,
//     declarative YAML/JSON rule sets under ruleset/, and the CLI under cmd/govali.
//   - Misusing the builder (empty names, nil extractors, nil rules) panics at declaration time;
//     problems found while validating are returned as errors; data failures live in Results.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v := govali.Of[Person]()
//	govali.Field(v, "Name", func(p Person) string { return p.Name }).MustSatisfy(rules.NotEmpty())
//	govali.Field(v, "Age", func(p Person) int { return p.Age }).MustSatisfy(rules.GreaterThan(0))
//
//	res, err := v.Validate(p)   // err: configuration problem; res: data failures
//	err = v.Check(p)            // nil or *govali.AggregatedError
package govali
