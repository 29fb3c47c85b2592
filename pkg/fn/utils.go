package fn

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// IsAbsent is the default absence predicate used by Of. A value is absent when it is
// nil (interface, pointer, map, slice, chan, func) or the zero value of a value type.
// An empty but non-nil slice or map is present. The static type T decides: for an
// interface type only nil is absent, whatever zero value it may hold.
func IsAbsent[T any](v T) bool {
	i := any(v)
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return IsNil(i)
	}
	if IsNil(i) {
		return true
	}
	rv := reflect.ValueOf(i)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return false
	}
	return rv.IsZero()
}

// AbsentIfNil is an absence predicate that treats only nil as absent, so zero values
// of value types (0, "", false) count as present.
func AbsentIfNil[T any](v T) bool {
	return IsNil(any(v))
}

type equaler[T any] interface {
	Equal(T) bool
}

// equalValues prefers the payload's own Equal method and falls back to deep equality.
func equalValues[T any](a, b T) bool {
	if e, ok := any(a).(equaler[T]); ok && !IsNil(any(a)) {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
