package fn

// Arity describes how many positional arguments a callable needs.
// The zero value is the Unknown case: the callable's signature could not be
// determined, which is not an error — callers fall back to try-and-see.
type Arity struct {
	// Required is a lower bound on the positional arguments needed to avoid
	// a missing-argument failure. It says nothing about keyword-only needs.
	Required int
	Variadic bool
	Known    bool
}

// Aritied is implemented by callables that can report their own Arity.
type Aritied interface {
	Arity() Arity
}

// ArityOf reports the arity of c, or the Unknown arity when c is an opaque
// callable that does not expose one.
func ArityOf(c Callable) Arity {
	if a, ok := c.(Aritied); ok {
		return a.Arity()
	}
	return Arity{}
}
