package govali

import "reflect"

// IsNil reports whether v is nil or a nil pointer, interface, map, slice, chan or func.
// Values of other kinds are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// typeName resolves the display name of T used in Results messages.
// Priority: named type > pointer element name > full type string.
func typeName[T any]() string {
	rt := reflect.TypeFor[T]()
	for rt.Kind() == reflect.Pointer && rt.Name() == "" {
		rt = rt.Elem()
	}
	if n := rt.Name(); n != "" {
		return n
	}
	return rt.String()
}
