package funtools_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/on-the-ground/funtools_go/funtools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadFirstVsLast_Placement(t *testing.T) {
	add := func(x, y int) int { return x + y }
	pow := func(x, y float64) float64 { return math.Pow(x, y) }

	// commutative form: placement invisible
	v, err := funtools.ThreadFirst(1, funtools.Form{Fn: add, Args: []any{4}})
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = funtools.ThreadLast(1, funtools.Form{Fn: add, Args: []any{4}})
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	// non-commutative form: placement decides
	v, err = funtools.ThreadFirst(1.0, funtools.Form{Fn: pow, Args: []any{2.0}})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v) // pow(1, 2)

	v, err = funtools.ThreadLast(1.0, funtools.Form{Fn: pow, Args: []any{2.0}})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v) // pow(2, 1)
}

func TestThread_PlainCallableForms(t *testing.T) {
	v, err := funtools.ThreadFirst("  go  ", strings.TrimSpace, strings.ToUpper)
	require.NoError(t, err)
	assert.Equal(t, "GO", v)
}

func TestThread_MixedForms(t *testing.T) {
	v, err := funtools.ThreadLast("42",
		strconv.Atoi,
		func(x int) int { return x + 1 },
		funtools.Form{Fn: func(scale, x int) int { return scale * x }, Args: []any{10}},
	)
	require.NoError(t, err)
	assert.Equal(t, 430, v)
}

func TestThread_ErrorStopsThreading(t *testing.T) {
	ran := false
	_, err := funtools.ThreadFirst("not-a-number",
		strconv.Atoi,
		func(x int) int { ran = true; return x },
	)
	assert.Error(t, err)
	assert.False(t, ran)
}
