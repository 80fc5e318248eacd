package ruleset

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// toInt64 converts any integral number produced by the decoders (or passed by callers) to int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintToInt64(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintToInt64(n)
	case float32:
		return floatToInt64(float64(n))
	case float64:
		return floatToInt64(n)
	case interface{ Int64() (int64, error) }:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// 30.0 or 3e1
		if f, ok := n.(interface{ Float64() (float64, error) }); ok {
			if x, err := f.Float64(); err == nil {
				return floatToInt64(x)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

func uintToInt64(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

func floatToInt64(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// toFloat64 converts any number, json.Number included, to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// sameValue compares decoded values, treating numbers of different Go types as equal when
// they denote the same number. Integers are compared exactly.
func sameValue(a, b any) bool {
	ai, aok := toInt64(a)
	bi, bok := toInt64(b)
	if aok && bok {
		return ai == bi
	}
	af, aok := toFloat64(a)
	bf, bok := toFloat64(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

func containsValue(list []any, want any) bool {
	return slices.ContainsFunc(list, func(e any) bool { return sameValue(e, want) })
}

func stringify(v any) string { return fmt.Sprint(v) }

func argString(rule string, arg any) (string, error) {
	s, ok := arg.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s expects a string, got %T", ErrBadArgument, rule, arg)
	}
	return s, nil
}

func argInt(rule string, arg any) (int64, error) {
	n, ok := toInt64(arg)
	if !ok {
		return 0, fmt.Errorf("%w: %s expects an integer, got %v", ErrBadArgument, rule, arg)
	}
	return n, nil
}

func argIntPair(rule string, arg any) (int64, int64, error) {
	list, ok := arg.([]any)
	if !ok || len(list) != 2 {
		return 0, 0, fmt.Errorf("%w: %s expects [min, max], got %v", ErrBadArgument, rule, arg)
	}
	lo, okLo := toInt64(list[0])
	hi, okHi := toInt64(list[1])
	if !okLo || !okHi {
		return 0, 0, fmt.Errorf("%w: %s expects integer bounds, got %v", ErrBadArgument, rule, arg)
	}
	return lo, hi, nil
}

func argRequired(rule string, arg any) error {
	if arg == nil {
		return fmt.Errorf("%w: %s requires an argument", ErrBadArgument, rule)
	}
	return nil
}
