// Package funtools provides functional combinators over the fn.Callable
// model: currying, memoization, composition, piping, threading, predicate
// complement, juxtaposition, and side-effecting taps.
//
// The combinators let you build pipelines of transformations over ordinary
// values without committing to any particular data structure. Every wrapper
// this package produces is itself a Callable, so combinators compose freely:
// a Curry can be memoized, a Memoize can sit inside a Compose, a Compose can
// be curried.
//
// # Currying
//
// Curry is the centerpiece. It wraps a callable together with already-bound
// arguments; each invocation merges the new arguments with the stored ones
// and either completes the call or hands back a new, further-applied Curry:
//
//	add := funtools.MustCurry(func(a, b, c int) int { return a + b + c })
//	partial, _ := add.Apply(1, 2)        // not enough yet: a new Curry
//	sum, _ := partial.(*funtools.Curry).Apply(3) // 6
//
// Deciding "complete the call or return a partial" relies on the fn package's
// arity inspection, with a try-and-see fallback for opaque callables whose
// signature cannot be determined.
//
// # Sequencing
//
// Compose applies right to left, Pipe left to right, ThreadFirst and
// ThreadLast insert an accumulating value into the first or last argument
// position of each form:
//
//	out, _ := funtools.Pipe(1,
//	    func(x int) int { return x + 1 },
//	    func(x int) int { return x * 10 },
//	) // 20
//
// # Discipline
//
// Curry and Compose instances are immutable after construction and safe to
// share across goroutines. Memoize's cache is deliberately not locked: supply
// a concurrency-safe cache (see the cache package) when sharing one.
// Combinators never log and never translate errors — a failure inside a
// wrapped callable surfaces to you unchanged.
package funtools
