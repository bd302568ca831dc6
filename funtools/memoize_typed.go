package funtools

// Typed front-ends over Memoize for the common arities. They keep call sites
// fully statically typed while reusing the dynamic key derivation and the
// pluggable cache underneath. Use them only on pure functions: a cached
// result is returned forever, whatever the function would do on a second
// call.

// MemoizeFn1 memoizes a unary pure function.
func MemoizeFn1[I, O any](pureFn func(I) O, opts ...MemoizeOption) func(I) O {
	m := MustMemoize(pureFn, opts...)
	return func(i I) O {
		return mustApply[O](m, i)
	}
}

// MemoizeFn2 memoizes a binary pure function.
func MemoizeFn2[I1, I2, O any](pureFn func(I1, I2) O, opts ...MemoizeOption) func(I1, I2) O {
	m := MustMemoize(pureFn, opts...)
	return func(i1 I1, i2 I2) O {
		return mustApply[O](m, i1, i2)
	}
}

// MemoizeFn3 memoizes a ternary pure function.
func MemoizeFn3[I1, I2, I3, O any](pureFn func(I1, I2, I3) O, opts ...MemoizeOption) func(I1, I2, I3) O {
	m := MustMemoize(pureFn, opts...)
	return func(i1 I1, i2 I2, i3 I3) O {
		return mustApply[O](m, i1, i2, i3)
	}
}

// mustApply panics on failure: with statically typed inputs the only failure
// left is an argument no key can be derived from.
func mustApply[O any](m *Memoize, args ...any) O {
	v, err := m.Call(args, nil)
	if err != nil {
		panic(err)
	}
	return v.(O)
}
