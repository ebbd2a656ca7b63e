package argv

import (
	"reflect"
)

// Resolve returns value unchanged, unless value is a function that can be
// called without arguments. In that case the function is called and its
// first return value is returned instead, or nil if it returns nothing.
//
// Functions that require arguments are treated as plain values. A panic
// inside the function is not recovered.
//
//   port := Resolve(func() string { return pickFreePort() })
func Resolve(value interface{}) interface{} {
	fn := reflect.ValueOf(value)
	if fn.Kind() != reflect.Func || fn.IsNil() || !producer(fn.Type()) {
		return value
	}

	out := fn.Call(nil)
	if len(out) == 0 {
		return nil
	}
	return out[0].Interface()
}

// producer reports whether a function of type t has no required parameters.
func producer(t reflect.Type) bool {
	switch t.NumIn() {
	case 0:
		return true
	case 1:
		return t.IsVariadic()
	default:
		return false
	}
}

// Memoize wraps a function so that it will only be called once. Repeated calls
// to the function will return the result cached from the first call. The
// returned function is not safe for concurrent use.
func Memoize(fn func() interface{}) func() interface{} {
	memoized := false
	var value interface{}
	return func() interface{} {
		if memoized {
			return value
		}

		value = fn()
		memoized = true
		return value
	}
}
