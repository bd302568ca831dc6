package helper

import (
	"fmt"
)

// AsType asserts v to the expected type T.
func AsType[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

// AsTypeErr asserts v to the expected type T.
// Returns an error describing the actual type if the assertion fails.
func AsTypeErr[T any](v any) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected type: %T", v)
	}
	return t, nil
}

// MustAsType is the panic-on-failure variant of AsTypeErr.
// Use when the dynamic type is guaranteed (e.g., a partial application is
// known to have returned a further-applicable wrapper).
func MustAsType[T any](v any) T {
	t, err := AsTypeErr[T](v)
	if err != nil {
		panic(err)
	}
	return t
}
