package funtools

import (
	"github.com/on-the-ground/funtools_go/fn"
)

// Identity returns its single argument unchanged.
var Identity fn.Callable = fn.MustLift(func(x any) any { return x })

// Compose sequences callables right to left:
// Compose(f1, f2, f3) behaves as f1(f2(f3(args...))). The rightmost callable
// receives the original call's full arguments, every other one exactly one
// positional argument. With no callables it is Identity; with one it is that
// callable, unwrapped.
func Compose(fs ...any) (fn.Callable, error) {
	switch len(fs) {
	case 0:
		return Identity, nil
	case 1:
		return fn.Lift(fs[0])
	}
	callables, err := liftAll(fs)
	if err != nil {
		return nil, err
	}
	n := len(callables)
	rest := make([]fn.Callable, 0, n-1)
	for i := n - 2; i >= 0; i-- {
		rest = append(rest, callables[i])
	}
	return &composed{first: callables[n-1], rest: rest}, nil
}

// MustCompose is the panic-on-failure variant of Compose.
func MustCompose(fs ...any) fn.Callable {
	c, err := Compose(fs...)
	if err != nil {
		panic(err)
	}
	return c
}

// composed holds the first-applied (rightmost) callable plus the remaining
// ones already reversed into application order. Immutable after construction.
type composed struct {
	first fn.Callable
	rest  []fn.Callable
}

func (c *composed) Call(args []any, kwargs map[string]any) (any, error) {
	res, err := c.first.Call(args, kwargs)
	if err != nil {
		return nil, err
	}
	for _, f := range c.rest {
		if res, err = f.Call([]any{res}, nil); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Pipe threads value through fs left to right: Pipe(v, f1, f2) computes
// f2(f1(v)). Each callable takes exactly one argument.
func Pipe(value any, fs ...any) (any, error) {
	for _, f := range fs {
		c, err := fn.Lift(f)
		if err != nil {
			return nil, err
		}
		if value, err = c.Call([]any{value}, nil); err != nil {
			return nil, err
		}
	}
	return value, nil
}

func liftAll(fs []any) ([]fn.Callable, error) {
	out := make([]fn.Callable, len(fs))
	for i, f := range fs {
		c, err := fn.Lift(f)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
