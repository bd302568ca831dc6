package funtools_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/funtools_go/fn"
	"github.com/on-the-ground/funtools_go/funtools"
	"github.com/on-the-ground/funtools_go/shared/helper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func add3(a, b, c int) int { return a + b + c }

// applyAll feeds argument batches to a curry one batch at a time, asserting
// every intermediate step yields a further-applicable wrapper.
func applyAll(t *testing.T, c *funtools.Curry, batches ...[]any) any {
	t.Helper()
	for i, batch := range batches {
		res, err := c.Apply(batch...)
		require.NoError(t, err)
		if i == len(batches)-1 {
			return res
		}
		c = helper.MustAsType[*funtools.Curry](res)
	}
	return c
}

func TestCurry_PartialApplicationRoundTrip(t *testing.T) {
	c := funtools.MustCurry(add3)

	assert.Equal(t, 6, applyAll(t, c, []any{1}, []any{2}, []any{3}))
	assert.Equal(t, 6, applyAll(t, c, []any{1, 2}, []any{3}))
	assert.Equal(t, 6, applyAll(t, c, []any{1}, []any{2, 3}))
	assert.Equal(t, 6, applyAll(t, c, []any{1, 2, 3}))
}

func TestCurry_Immutability(t *testing.T) {
	base := funtools.MustCurry(add3, 10)

	left, err := base.Apply(1)
	require.NoError(t, err)
	right, err := base.Apply(2)
	require.NoError(t, err)

	lv, err := helper.MustAsType[*funtools.Curry](left).Apply(100)
	require.NoError(t, err)
	rv, err := helper.MustAsType[*funtools.Curry](right).Apply(100)
	require.NoError(t, err)

	assert.Equal(t, 111, lv)
	assert.Equal(t, 112, rv)
	assert.Equal(t, []any{10}, base.Args()) // the original never moved
}

func TestCurry_UnwrapsInnerCurry(t *testing.T) {
	inner := funtools.MustCurry(add3, 1)
	outer := funtools.MustCurry(inner, 2)

	assert.Equal(t, []any{1, 2}, outer.Args())

	v, err := outer.Apply(3)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestCurry_KwargMergePrecedence(t *testing.T) {
	join := fn.MustFunc(
		func(a, b, sep string) string { return a + sep + b },
		fn.Param("a"), fn.Param("b"), fn.Param("sep"),
	)

	c, err := funtools.NewCurryKw(join, []any{"x"}, map[string]any{"sep": "-"})
	require.NoError(t, err)

	// bound kwargs fill the gap
	v, err := c.Call([]any{"y"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "x-y", v)

	// call-time kwargs win over bound ones
	v, err = c.Call([]any{"y"}, map[string]any{"sep": "+"})
	require.NoError(t, err)
	assert.Equal(t, "x+y", v)
}

func TestCurry_RecurryMergesKwargs(t *testing.T) {
	join := fn.MustFunc(
		func(a, b, sep string) string { return a + sep + b },
		fn.Param("a"), fn.Param("b"), fn.Param("sep"),
	)

	inner, err := funtools.NewCurryKw(join, nil, map[string]any{"sep": "-", "b": "y"})
	require.NoError(t, err)
	outer, err := funtools.NewCurryKw(inner, nil, map[string]any{"sep": "+"})
	require.NoError(t, err)

	// explicit kwargs of the re-curry won on the collision
	v, err := outer.Call([]any{"x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "x+y", v)
}

func TestCurry_GenuineErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	c := funtools.MustCurry(func(a int) (int, error) {
		return 0, boom
	})

	_, err := c.Apply(1)
	assert.ErrorIs(t, err, boom)
}

func TestCurry_InnerMissingArgErrorNotMistakenForPartial(t *testing.T) {
	needsTwo := fn.MustFunc(func(a, b int) int { return a + b })
	// The wrapped function itself surfaces a missing-argument error from a
	// nested dynamic call; arity says this call was complete, so the error
	// must come through instead of a partial.
	c := funtools.MustCurry(func(x int) (any, error) {
		return needsTwo.Call([]any{x}, nil)
	})

	_, err := c.Apply(7)
	var missing *fn.MissingArgError
	require.ErrorAs(t, err, &missing)
}

func TestCurry_UnknownArityFallsBackToPartial(t *testing.T) {
	// An opaque callable: no arity to consult, so a missing-argument failure
	// is always treated as partial application.
	opaque := fn.CallableFunc(func(args []any, kwargs map[string]any) (any, error) {
		if len(args) < 2 {
			return nil, &fn.MissingArgError{Fn: "opaque", Missing: []string{"#2"}}
		}
		return args[0].(int) * args[1].(int), nil
	})

	c := funtools.MustCurry(opaque)
	res, err := c.Apply(6)
	require.NoError(t, err)

	v, err := helper.MustAsType[*funtools.Curry](res).Apply(7)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestCurry_Variadic(t *testing.T) {
	c := funtools.MustCurry(func(scale int, xs ...int) int {
		sum := 0
		for _, x := range xs {
			sum += x
		}
		return scale * sum
	})

	res, err := c.Apply()
	require.NoError(t, err)

	v, err := helper.MustAsType[*funtools.Curry](res).Apply(2, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestCurry_NotCallable(t *testing.T) {
	_, err := funtools.NewCurry(42)
	assert.ErrorIs(t, err, fn.ErrNotCallable)
}

func TestCurry_Partial(t *testing.T) {
	c := funtools.MustCurry(add3).Partial(1, 2)

	assert.Equal(t, []any{1, 2}, c.Args())
	assert.Equal(t, fn.Arity{Required: 1, Known: true}, c.Arity())

	v, err := c.Apply(3)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestCurry_CallableAnywhere(t *testing.T) {
	// a fully-bound curry is an ordinary callable from a collaborator's view
	inc := funtools.MustCurry(func(a, b int) int { return a + b }, 1)

	out, err := funtools.Pipe(41, inc)
	require.NoError(t, err)
	assert.Equal(t, 42, out)
}
