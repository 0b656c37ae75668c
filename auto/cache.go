package auto

import (
	"strconv"
	"sync"
)

// CoderCache is a concurrent insert-or-get cache keyed by
// "caseStrategy++typeName++extras.hash" (§4.7). Its factory runs at most
// once per key; concurrent callers racing to build the same coder observe
// a single instance. There is no eviction: generated coders are cheap and
// tied to compile-time-known types.
type CoderCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	mu   sync.Mutex
	done bool
	pair CoderPair
}

func newCoderCache() *CoderCache {
	return &CoderCache{entries: make(map[string]*cacheEntry)}
}

// globalCache backs the package-level Encoder[T]/Decoder[T] entry points,
// matching the cache's intended process-wide scope.
var globalCache = newCoderCache()

func cacheKey(strategy CaseStrategy, typeName string, extrasHash string) string {
	return strconv.Itoa(int(strategy)) + "++" + typeName + "++" + extrasHash
}

func (c *CoderCache) getEntry(key string) *cacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &cacheEntry{}
		c.entries[key] = e
	}
	return e
}

// peek returns the cached pair for key without triggering generation; the
// cached-coder lookup (§4.6 step 2) uses it so that a miss does not create
// an entry before the coder is built.
func (c *CoderCache) peek(key string) (CoderPair, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return CoderPair{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pair, e.done
}

// GetOrCreate returns the cached coder pair for key, running factory at
// most once to build it.
func (c *CoderCache) GetOrCreate(key string, factory func() CoderPair) CoderPair {
	e := c.getEntry(key)
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.done {
		e.pair = factory()
		e.done = true
	}
	return e.pair
}
