// Package rules provides ready-made govali.Rule factories for strings, integers, objects and
// slices.
//
// Every factory returns a new, stateless Rule; failures carry a govali code and params so the
// i18n catalogue can render them. Rules that need configuration (regular expressions) panic at
// construction when it is invalid.
package rules
