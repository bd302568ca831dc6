package fn

import (
	"fmt"
	"reflect"
)

// Callable is the capability every combinator in this module is polymorphic
// over: invocable with positional arguments and keyword arguments, producing
// a value or an error.
type Callable interface {
	Call(args []any, kwargs map[string]any) (any, error)
}

// CallableFunc adapts a bare closure to Callable.
type CallableFunc func(args []any, kwargs map[string]any) (any, error)

func (f CallableFunc) Call(args []any, kwargs map[string]any) (any, error) {
	return f(args, kwargs)
}

// Lift turns a value into a Callable:
//   - a Callable is returned as is,
//   - a Go func is wrapped in a Func (no parameter descriptors, so no
//     keyword binding),
//   - anything else fails with ErrNotCallable.
func Lift(v any) (Callable, error) {
	if c, ok := v.(Callable); ok {
		return c, nil
	}
	if v != nil && reflect.ValueOf(v).Kind() == reflect.Func {
		return NewFunc(v)
	}
	return nil, fmt.Errorf("%w: %T", ErrNotCallable, v)
}

// MustLift is the panic-on-failure variant of Lift.
// Use with literals whose callability is evident at the call site.
func MustLift(v any) Callable {
	c, err := Lift(v)
	if err != nil {
		panic(err)
	}
	return c
}
