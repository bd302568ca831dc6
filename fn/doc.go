// Package fn defines the dynamic callable model that the rest of
// Funtool-ive Go is built on.
//
// A Callable is anything invocable with positional arguments and keyword
// arguments. Go functions don't carry parameter names at runtime, so keyword
// support is opt-in: describe the parameters with ParamSpec when constructing
// a Func and the adapter binds keywords (and fills defaults) for you.
//
// # Why a dynamic model?
//
// Combinators like currying and composition are polymorphic over "anything
// callable". Go's type system can express fixed arities with generics, but not
// "a function of whatever arity the caller hands us". This package trades
// static types for that flexibility in one small, contained place:
//   - Func wraps an ordinary Go func via reflection,
//   - ArityOf reports how many positional arguments a callable still needs,
//   - errors distinguish "you didn't supply enough arguments" from
//     "the function itself failed".
//
// Everything above this package (currying, memoization, composition) stays
// mechanical: merge arguments, call, inspect the outcome.
//
// Example:
//
//	double := fn.MustLift(func(x int) int { return x * 2 })
//	v, err := double.Call([]any{21}, nil) // 42, nil
package fn
