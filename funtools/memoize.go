package funtools

import (
	"github.com/on-the-ground/funtools_go/cache"
	"github.com/on-the-ground/funtools_go/fn"
)

// Cache is the mapping a Memoize stores results in. The memoizer never
// evicts; bounded growth and concurrent-mutation safety are the cache
// implementation's concern (see the cache package for ready-made ones).
type Cache interface {
	Load(key any) (any, bool)
	Store(key any, value any)
}

// KeyFunc derives a cache key from a call's arguments, overriding the
// built-in derivation.
type KeyFunc func(args []any, kwargs map[string]any) (any, error)

// Memoize wraps a callable with a cache keyed by a derived signature of each
// call. A cache hit returns the first computed result without invoking the
// underlying callable, even if the callable is non-deterministic.
type Memoize struct {
	fn    fn.Callable
	cache Cache
	keyFn KeyFunc

	// shape flags, derived once at construction
	unary bool
	mayKw bool
}

// MemoizeOption configures a Memoize at construction.
type MemoizeOption func(*Memoize)

// WithCache injects the cache to store results in; it may be pre-populated
// or shared between memoizers.
func WithCache(c Cache) MemoizeOption {
	return func(m *Memoize) { m.cache = c }
}

// WithKeyFunc installs a custom key derivation.
func WithKeyFunc(k KeyFunc) MemoizeOption {
	return func(m *Memoize) { m.keyFn = k }
}

// NewMemoize wraps f (a fn.Callable or plain Go func) with memoization.
// The cache defaults to an unbounded, unsynchronized map.
func NewMemoize(f any, opts ...MemoizeOption) (*Memoize, error) {
	c, err := fn.Lift(f)
	if err != nil {
		return nil, err
	}
	m := &Memoize{fn: c}
	for _, opt := range opts {
		opt(m)
	}
	if m.cache == nil {
		m.cache = cache.NewMap()
	}
	if s, ok := c.(fn.Shaped); ok {
		shape := s.Shape()
		m.unary, m.mayKw = shape.Unary, shape.Keywordable
	} else {
		// Opaque callable: keywords cannot be ruled out.
		m.mayKw = true
	}
	return m, nil
}

// MustMemoize is the panic-on-failure variant of NewMemoize.
func MustMemoize(f any, opts ...MemoizeOption) *Memoize {
	m, err := NewMemoize(f, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// MemoizeWith returns a partially-applied constructor carrying only options,
// usable as a decorator factory over many functions:
//
//	memo := funtools.MemoizeWith(funtools.WithCache(shared))
//	f1, _ := memo(pureA)
//	f2, _ := memo(pureB)
func MemoizeWith(opts ...MemoizeOption) func(f any) (*Memoize, error) {
	return func(f any) (*Memoize, error) {
		return NewMemoize(f, opts...)
	}
}

// Fn returns the underlying callable.
func (m *Memoize) Fn() fn.Callable { return m.fn }

// Call derives the cache key for the supplied arguments, returns the cached
// result on a hit, and otherwise invokes the underlying callable and stores
// its result. Errors are never cached.
func (m *Memoize) Call(args []any, kwargs map[string]any) (any, error) {
	key, err := m.key(args, kwargs)
	if err != nil {
		return nil, err
	}
	if v, ok := m.cache.Load(key); ok {
		return v, nil
	}
	res, err := m.fn.Call(args, kwargs)
	if err != nil {
		return nil, err
	}
	m.cache.Store(key, res)
	return res, nil
}

// Apply invokes the memoizer with positional arguments only.
func (m *Memoize) Apply(args ...any) (any, error) {
	return m.Call(args, nil)
}

func (m *Memoize) key(args []any, kwargs map[string]any) (any, error) {
	switch {
	case m.keyFn != nil:
		return m.keyFn(args, kwargs)
	case m.unary && len(args) == 1 && len(kwargs) == 0:
		// Fast path for strictly-unary functions: the argument is the key.
		return normalizeKey(args[0])
	case m.mayKw:
		argsKey, err := argsKeyOf(args)
		if err != nil {
			return nil, err
		}
		kwKey, err := kwargsKeyOf(kwargs)
		if err != nil {
			return nil, err
		}
		return keyPair{head: argsKey, tail: kwKey}, nil
	default:
		return argsKeyOf(args)
	}
}
