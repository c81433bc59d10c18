package fn

import (
	"reflect"
)

// IsNil reports whether i is nil or a nil pointer, slice, map, func, chan or interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors splits a combined error into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	if e, ok := err.(interface{ Errors() []error }); ok {
		return e.Errors()
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		return e.Unwrap()
	}

	return []error{err}
}
