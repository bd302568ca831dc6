package funtools

import (
	"github.com/on-the-ground/funtools_go/fn"
)

// Complement returns a callable that invokes f with the given arguments and
// returns the boolean negation of its result's truth value. Errors from f
// propagate unchanged.
func Complement(f any) (fn.Callable, error) {
	c, err := fn.Lift(f)
	if err != nil {
		return nil, err
	}
	return fn.CallableFunc(func(args []any, kwargs map[string]any) (any, error) {
		res, err := c.Call(args, kwargs)
		if err != nil {
			return nil, err
		}
		return !fn.Truthy(res), nil
	}), nil
}

// MustComplement is the panic-on-failure variant of Complement.
func MustComplement(f any) fn.Callable {
	c, err := Complement(f)
	if err != nil {
		panic(err)
	}
	return c
}
