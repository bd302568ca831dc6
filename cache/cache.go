// Package cache provides cache implementations for memoized callables:
// a plain unbounded map, a concurrency-safe map, and a size-bounded cache
// with generational rotation. All of them share the minimal Load/Store
// mapping surface the memoizer expects; none of them evict entries
// individually.
package cache

// Map is an unbounded, unsynchronized cache. It is the default: cheapest
// when the memoized callable is used from a single goroutine.
type Map struct {
	m map[any]any
}

func NewMap() *Map {
	return &Map{m: make(map[any]any)}
}

// NewMapFrom seeds the cache with pre-computed entries. The seed map is used
// directly, so the caller can keep a handle to it.
func NewMapFrom(seed map[any]any) *Map {
	if seed == nil {
		seed = make(map[any]any)
	}
	return &Map{m: seed}
}

func (c *Map) Load(key any) (any, bool) {
	v, ok := c.m[key]
	return v, ok
}

func (c *Map) Store(key, value any) {
	c.m[key] = value
}

// Len reports the number of cached entries.
func (c *Map) Len() int { return len(c.m) }
