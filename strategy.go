package govali

import (
	"fmt"
	"strings"
)

// Strategy controls how the Outcomes of several bindings become a Results collection.
type Strategy int

const (
	CollectAll Strategy = iota // Evaluate every binding and keep every failure (default).
	FailFast                   // Stop at the first failing binding.
)

// Check evaluates one bound rule. A non-nil error is a configuration problem and aborts the run.
type Check func() (Outcome, error)

func (s Strategy) String() string {
	switch s {
	case CollectAll:
		return "collectAll"
	case FailFast:
		return "failFast"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "collectAll"/"collect"/"collect-all" and "failFast"/"fail-fast",
// case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "collectall", "collect", "collect-all", "collect_all", "collectfailures":
		return CollectAll, nil
	case "failfast", "fail-fast", "fail_fast":
		return FailFast, nil
	default:
		return CollectAll, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func (s Strategy) MarshalText() ([]byte, error) {
	if s != CollectAll && s != FailFast {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Run evaluates checks in order and aggregates their failures for the named target.
// nil checks or an empty target name are rejected before anything is evaluated.
func (s Strategy) Run(target string, checks []Check) (*Results, error) {
	if checks == nil {
		return nil, invalidArgument("checks to run must not be nil")
	}
	if target == "" {
		return nil, invalidArgument("target name must not be empty")
	}
	switch s {
	case CollectAll, FailFast:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	res := NewResults(target)
	for _, c := range checks {
		o, err := c()
		if err != nil {
			return nil, err
		}
		res.Add(o)
		if s == FailFast && o.Invalid() {
			return res, nil
		}
	}
	return res, nil
}
