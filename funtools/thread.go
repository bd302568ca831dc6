package funtools

import (
	"github.com/on-the-ground/funtools_go/fn"
)

// Form is a threading step with extra arguments: ThreadFirst calls
// Fn(value, Args...) and ThreadLast calls Fn(Args..., value).
type Form struct {
	Fn   any
	Args []any
}

// ThreadFirst threads value through the forms, inserting the accumulating
// value as the FIRST positional argument of each form. A plain callable form
// is applied to the value alone.
func ThreadFirst(value any, forms ...any) (any, error) {
	return thread(value, forms, true)
}

// ThreadLast threads value through the forms, inserting the accumulating
// value as the LAST positional argument of each form.
func ThreadLast(value any, forms ...any) (any, error) {
	return thread(value, forms, false)
}

func thread(value any, forms []any, first bool) (any, error) {
	for _, raw := range forms {
		target, extra := raw, []any(nil)
		if form, ok := raw.(Form); ok {
			target, extra = form.Fn, form.Args
		}
		c, err := fn.Lift(target)
		if err != nil {
			return nil, err
		}

		args := make([]any, 0, len(extra)+1)
		if first {
			args = append(append(args, value), extra...)
		} else {
			args = append(append(args, extra...), value)
		}
		if value, err = c.Call(args, nil); err != nil {
			return nil, err
		}
	}
	return value, nil
}
