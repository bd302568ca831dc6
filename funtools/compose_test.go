package funtools_test

import (
	"strings"
	"testing"

	"github.com/on-the-ground/funtools_go/fn"
	"github.com/on-the-ground/funtools_go/funtools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inc(x int) int    { return x + 1 }
func double(x int) int { return x * 2 }

func TestCompose_ZeroIsIdentity(t *testing.T) {
	id := funtools.MustCompose()

	v, err := id.Call([]any{"anything"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "anything", v)
}

func TestCompose_OneIsUnwrapped(t *testing.T) {
	f := fn.MustFunc(inc)
	c := funtools.MustCompose(f)
	assert.Same(t, f, c)
}

func TestCompose_RightToLeft(t *testing.T) {
	c := funtools.MustCompose(double, inc) // double(inc(x))

	v, err := c.Call([]any{5}, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, v)
}

func TestCompose_RightmostGetsFullArguments(t *testing.T) {
	c := funtools.MustCompose(
		strings.ToUpper,
		func(a, b string) string { return a + b },
	)

	v, err := c.Call([]any{"go", "pher"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "GOPHER", v)
}

func TestPipe_LeftToRight(t *testing.T) {
	v, err := funtools.Pipe(1, inc, double)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestPipe_ComposeDuality(t *testing.T) {
	square := func(x int) int { return x * x }

	piped, err := funtools.Pipe(3, inc, double, square)
	require.NoError(t, err)

	composed := funtools.MustCompose(square, double, inc)
	comped, err := composed.Call([]any{3}, nil)
	require.NoError(t, err)

	assert.Equal(t, comped, piped)
}

func TestPipe_ErrorShortCircuits(t *testing.T) {
	ran := false
	_, err := funtools.Pipe(1,
		func(x int) (int, error) { return 0, assert.AnError },
		func(x int) int { ran = true; return x },
	)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, ran)
}

func TestCompose_CombinatorsCompose(t *testing.T) {
	// a curry inside a compose inside a memoize: everything is a callable
	add := funtools.MustCurry(func(a, b int) int { return a + b }, 10)
	m := funtools.MustMemoize(funtools.MustCompose(double, add))

	v, err := m.Apply(11)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
