package funtools

import (
	"errors"
	"sync"

	"github.com/on-the-ground/funtools_go/fn"
)

// curried is the surface a callable must expose to be unwrapped and merged
// by NewCurry instead of being wrapped in a second layer.
type curried interface {
	fn.Callable
	Fn() fn.Callable
	Args() []any
	Keywords() map[string]any
}

// Curry wraps a callable plus partially-bound positional and keyword
// arguments. Instances are immutable: every invocation either completes the
// underlying call or produces a new Curry, never mutating the original, so a
// single instance can be reused and shared freely.
type Curry struct {
	fn     fn.Callable
	args   []any
	kwargs map[string]any

	arityOnce sync.Once
	arity     fn.Arity
}

// NewCurry wraps f with the given bound positional arguments.
// f may be a fn.Callable or a plain Go func; anything else fails with
// fn.ErrNotCallable. If f is itself curried it is unwrapped and its bound
// arguments merged, so re-currying a partial behaves identically to currying
// with pre-merged arguments.
func NewCurry(f any, args ...any) (*Curry, error) {
	return NewCurryKw(f, args, nil)
}

// NewCurryKw is NewCurry with bound keyword arguments. On a key collision
// with an unwrapped inner curry, the explicit kwargs win.
func NewCurryKw(f any, args []any, kwargs map[string]any) (*Curry, error) {
	c, err := fn.Lift(f)
	if err != nil {
		return nil, err
	}
	if inner, ok := c.(curried); ok {
		args = append(inner.Args(), args...)
		kwargs = mergeKwargs(inner.Keywords(), kwargs)
		c = inner.Fn()
	}
	return &Curry{fn: c, args: cloneArgs(args), kwargs: cloneKwargs(kwargs)}, nil
}

// MustCurry is the panic-on-failure variant of NewCurry.
func MustCurry(f any, args ...any) *Curry {
	c, err := NewCurry(f, args...)
	if err != nil {
		panic(err)
	}
	return c
}

// Fn returns the underlying callable.
func (c *Curry) Fn() fn.Callable { return c.fn }

// Args returns a copy of the bound positional arguments.
func (c *Curry) Args() []any { return cloneArgs(c.args) }

// Keywords returns a copy of the bound keyword arguments, nil when none are
// bound.
func (c *Curry) Keywords() map[string]any { return cloneKwargs(c.kwargs) }

// Arity reports the positional arguments still outstanding after the bound
// ones, or Unknown when the underlying callable's signature is opaque.
func (c *Curry) Arity() fn.Arity {
	ar := c.fnArity()
	if !ar.Known {
		return ar
	}
	ar.Required -= len(c.args)
	if ar.Required < 0 {
		ar.Required = 0
	}
	return ar
}

// Call merges the supplied arguments with the bound ones and invokes the
// underlying callable. Positionally, bound arguments come first; keyword-wise,
// call-time kwargs take precedence and bound kwargs only fill gaps.
//
// When the invocation fails with a missing-argument error and the arity of
// the underlying callable confirms (or cannot rule out) that too few
// positional arguments were supplied, Call returns a new Curry holding the
// merged arguments instead of failing. Every other error propagates
// unchanged.
func (c *Curry) Call(args []any, kwargs map[string]any) (any, error) {
	effArgs := c.args
	if len(args) > 0 {
		effArgs = make([]any, 0, len(c.args)+len(args))
		effArgs = append(append(effArgs, c.args...), args...)
	}
	effKwargs := kwargs
	if len(c.kwargs) > 0 {
		effKwargs = mergeKwargs(c.kwargs, kwargs)
	}

	res, err := c.fn.Call(effArgs, effKwargs)
	if err == nil {
		return res, nil
	}
	var missing *fn.MissingArgError
	if !errors.As(err, &missing) {
		return nil, err
	}
	if ar := c.fnArity(); !ar.Known || ar.Variadic || len(effArgs) < ar.Required {
		return &Curry{fn: c.fn, args: cloneArgs(effArgs), kwargs: cloneKwargs(effKwargs)}, nil
	}
	// Enough positional arguments were supplied, so the failure did not come
	// from this layer's partial application.
	return nil, err
}

// Apply invokes the curry with positional arguments only.
// The result is either the underlying callable's result or a new *Curry.
func (c *Curry) Apply(args ...any) (any, error) {
	return c.Call(args, nil)
}

// Partial returns a new Curry with the extra positional arguments bound,
// without attempting an invocation.
func (c *Curry) Partial(args ...any) *Curry {
	merged := make([]any, 0, len(c.args)+len(args))
	merged = append(append(merged, c.args...), args...)
	return &Curry{fn: c.fn, args: merged, kwargs: cloneKwargs(c.kwargs)}
}

// fnArity derives the underlying callable's arity once per instance;
// re-deriving is wasteful and the result is immutable for a given callable.
func (c *Curry) fnArity() fn.Arity {
	c.arityOnce.Do(func() {
		c.arity = fn.ArityOf(c.fn)
	})
	return c.arity
}

func cloneArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	copy(out, args)
	return out
}

func cloneKwargs(kwargs map[string]any) map[string]any {
	if len(kwargs) == 0 {
		return nil
	}
	out := make(map[string]any, len(kwargs))
	for k, v := range kwargs {
		out[k] = v
	}
	return out
}

// mergeKwargs lays over on top of base without mutating either;
// keys present in over win.
func mergeKwargs(base, over map[string]any) map[string]any {
	if len(base) == 0 {
		return cloneKwargs(over)
	}
	out := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}
