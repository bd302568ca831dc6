package cache

import "sync"

// SyncMap is an unbounded cache safe for sharing between goroutines.
// The memoizer itself never locks; use this when one cache backs memoized
// callables invoked concurrently.
type SyncMap struct {
	m sync.Map
}

func NewSyncMap() *SyncMap {
	return &SyncMap{}
}

func (c *SyncMap) Load(key any) (any, bool) {
	return c.m.Load(key)
}

func (c *SyncMap) Store(key, value any) {
	c.m.Store(key, value)
}
