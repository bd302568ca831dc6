package funtools

import (
	"iter"
	"reflect"

	"github.com/on-the-ground/funtools_go/fn"
)

// JuxtFn applies several callables to the same arguments, yielding their
// results lazily in order. Immutable after construction.
type JuxtFn struct {
	fns []fn.Callable
}

// Juxt builds a JuxtFn from the given callables. A single argument that is
// not itself callable but is a slice or array of callables is unpacked as
// the function list.
func Juxt(fs ...any) (*JuxtFn, error) {
	if len(fs) == 1 {
		if _, err := fn.Lift(fs[0]); err != nil {
			if rv := reflect.ValueOf(fs[0]); rv.IsValid() &&
				(rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
				unpacked := make([]any, rv.Len())
				for i := range unpacked {
					unpacked[i] = rv.Index(i).Interface()
				}
				fs = unpacked
			}
		}
	}
	callables, err := liftAll(fs)
	if err != nil {
		return nil, err
	}
	return &JuxtFn{fns: callables}, nil
}

// MustJuxt is the panic-on-failure variant of Juxt.
func MustJuxt(fs ...any) *JuxtFn {
	j, err := Juxt(fs...)
	if err != nil {
		panic(err)
	}
	return j
}

// Results invokes every wrapped callable with the same arguments, lazily:
// each callable runs only when iteration reaches it. The returned sequence
// is finite (one element per callable) and single-use — ranging over it a
// second time yields nothing. Re-invoking the JuxtFn produces a fresh
// sequence.
func (j *JuxtFn) Results(args []any, kwargs map[string]any) iter.Seq2[any, error] {
	consumed := false
	return func(yield func(any, error) bool) {
		if consumed {
			return
		}
		consumed = true
		for _, f := range j.fns {
			if !yield(f.Call(args, kwargs)) {
				return
			}
		}
	}
}

// Call returns the lazy result sequence as a value, making JuxtFn usable
// anywhere a Callable is expected.
func (j *JuxtFn) Call(args []any, kwargs map[string]any) (any, error) {
	return j.Results(args, kwargs), nil
}

// Collect drains a result sequence eagerly, stopping at the first error.
func Collect(seq iter.Seq2[any, error]) ([]any, error) {
	var out []any
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
