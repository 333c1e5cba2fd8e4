package spec

import "reflect"

// Truthy reports whether v counts as a passing outcome. nil, false, zero
// numbers and empty strings, slices, maps and arrays are falsy; nil
// pointers, functions and channels are falsy; everything else, including
// any struct value, is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	// Structs and anything else behave like a non-empty object.
	return true
}
