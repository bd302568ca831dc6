package cache

import (
	"sync"
	"sync/atomic"
)

// Bounded is a size-bounded cache with dual-generation rotation: entries go
// into the head generation until it reaches maxSize, then the generations
// swap and the stale one is discarded wholesale. Lookups consult the head
// generation first, then the previous one, so recently useful entries
// survive a rotation's worth of churn without per-entry eviction bookkeeping.
//
// Safe for concurrent use.
type Bounded struct {
	gens    [2]atomic.Pointer[sync.Map]
	headIdx atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

func NewBounded(maxSize uint32) *Bounded {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	b := &Bounded{maxSize: maxSize}
	b.gens[0].Store(&sync.Map{})
	b.gens[1].Store(&sync.Map{})
	return b
}

func (c *Bounded) Load(key any) (any, bool) {
	headIdx := c.headIdx.Load()
	if v, ok := c.gens[headIdx].Load().Load(key); ok {
		return v, true
	}
	return c.gens[1-headIdx].Load().Load(key)
}

func (c *Bounded) Store(key, value any) {
	if swapped := c.size.CompareAndSwap(c.maxSize, 0); swapped {
		headIdx := 1 - c.headIdx.Load()
		c.gens[headIdx].Store(&sync.Map{})
		c.headIdx.Store(headIdx)
	}
	c.gens[c.headIdx.Load()].Load().Store(key, value)
	c.size.Add(1)
}
