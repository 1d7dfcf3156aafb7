package utils

import "reflect"

// PointerFree reports whether values of T can be stored as raw bytes, i.e.
// T holds no pointers, slices, maps, strings, channels, funcs or interfaces.
func PointerFree[T any]() bool {
	return pointerFree(reflect.TypeOf((*T)(nil)).Elem())
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}

		return true
	}

	return false
}
