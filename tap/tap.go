// Package tap provides ready-made side-effecting callables for use with
// funtools.Do and as pass-through pipeline stages. The combinators themselves
// never log; observation enters a pipeline only where the caller explicitly
// taps it.
package tap

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/funtools_go/fn"
)

// Zap returns a tap that logs every value it sees at debug level, tagging
// each invocation with a fresh id so interleaved pipelines stay traceable.
// The tap returns nothing; combine with funtools.Do or Stage to keep the
// tapped value flowing.
func Zap(logger *zap.Logger, msg string) fn.Callable {
	return fn.CallableFunc(func(args []any, kwargs map[string]any) (any, error) {
		fields := make([]zap.Field, 0, len(args)+len(kwargs)+1)
		fields = append(fields, zap.String("invocation_id", uuid.NewString()))
		for i, a := range args {
			fields = append(fields, zap.Any(fmt.Sprintf("arg%d", i), a))
		}
		for k, v := range kwargs {
			fields = append(fields, zap.Any(k, v))
		}
		logger.Debug(msg, fields...)
		return nil, nil
	})
}

// Stage wraps a tap as a pass-through unary stage for Pipe or Compose:
// the tap runs for its side effect and the tapped value continues unchanged.
// A tap error stops the pipeline.
func Stage(t fn.Callable) fn.Callable {
	return fn.CallableFunc(func(args []any, kwargs map[string]any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("tap stage expects exactly one value, got %d", len(args))
		}
		if _, err := t.Call(args, kwargs); err != nil {
			return nil, err
		}
		return args[0], nil
	})
}
