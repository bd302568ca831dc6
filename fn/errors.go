package fn

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotCallable reports that a value passed where a callable was required is
// neither a Callable nor a Go func.
var ErrNotCallable = errors.New("not callable")

// MissingArgError reports that a call could not bind every required
// parameter. It is the one failure class the currying layer treats as "the
// caller hasn't finished supplying arguments yet"; every other error is a
// genuine failure and propagates unchanged.
type MissingArgError struct {
	Fn      string
	Missing []string
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf("%s: missing required arguments: %s", e.Fn, strings.Join(e.Missing, ", "))
}

// KeywordError reports keyword arguments the callable cannot accept, either
// because the name matches no declared parameter or because the func carries
// no parameter descriptors at all.
type KeywordError struct {
	Fn   string
	Keys []string
}

func (e *KeywordError) Error() string {
	return fmt.Sprintf("%s: unexpected keyword arguments: %s", e.Fn, strings.Join(e.Keys, ", "))
}
