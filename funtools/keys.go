package funtools

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
	json "github.com/goccy/go-json"
)

// Cache keys are built from normalized argument values folded into nested
// pairs, so any combination of arguments collapses to a single comparable
// value usable as a map key. Keyword arguments fold in sorted-name order,
// making the key independent of the order the caller supplied them in.

type keySentinel uint8

const (
	noArgs keySentinel = iota + 1
	noKwargs
)

type keyPair struct {
	head any
	tail any
}

// hashedKey stands in for values that are not comparable: the xxhash digest
// of their canonical JSON encoding, tagged with the dynamic type to keep
// equal encodings of different types apart.
type hashedKey struct {
	typ string
	sum uint64
}

// normalizeKey maps an argument to a comparable key component: Stringers key
// by their String(), comparable values key as themselves, everything else by
// a digest of its canonical JSON encoding.
func normalizeKey(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), nil
	}
	t := reflect.TypeOf(v)
	if t.Comparable() {
		return v, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("memoize: cannot derive a key from %T: %w", v, err)
	}
	return hashedKey{typ: t.String(), sum: xxhash.Sum64(raw)}, nil
}

func argsKeyOf(args []any) (any, error) {
	switch len(args) {
	case 0:
		return noArgs, nil
	case 1:
		return normalizeKey(args[0])
	}
	var key any = noArgs
	for i := len(args) - 1; i >= 0; i-- {
		k, err := normalizeKey(args[i])
		if err != nil {
			return nil, err
		}
		key = keyPair{head: k, tail: key}
	}
	return key, nil
}

func kwargsKeyOf(kwargs map[string]any) (any, error) {
	if len(kwargs) == 0 {
		return noKwargs, nil
	}
	names := make([]string, 0, len(kwargs))
	for k := range kwargs {
		names = append(names, k)
	}
	sort.Strings(names)

	var key any = noKwargs
	for i := len(names) - 1; i >= 0; i-- {
		v, err := normalizeKey(kwargs[names[i]])
		if err != nil {
			return nil, err
		}
		key = keyPair{head: keyPair{head: names[i], tail: v}, tail: key}
	}
	return key, nil
}
