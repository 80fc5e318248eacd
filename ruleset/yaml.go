package ruleset

// normalizeValue converts YAML-decoded values, which may contain map[any]any, into the
// map[string]any shape JSON decoding produces. Non-string keys are rendered with %v.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[keyString(k)] = normalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return stringify(k)
}
