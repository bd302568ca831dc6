package funtools

import (
	"github.com/on-the-ground/funtools_go/fn"
)

// Do invokes f(x) for its side effect and returns x unchanged, discarding
// whatever f returns. An error from f is not discarded: it propagates and x
// is withheld.
func Do(f any, x any) (any, error) {
	c, err := fn.Lift(f)
	if err != nil {
		return nil, err
	}
	if _, err := c.Call([]any{x}, nil); err != nil {
		return nil, err
	}
	return x, nil
}
