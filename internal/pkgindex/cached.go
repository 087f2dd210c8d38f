package pkgindex

import (
	"container/list"
	"sync"
)

// Cached wraps an Index with an in-memory, bounded LRU memoizing
// GetLatestVersion lookups for the lifetime of one pipeline run. It is
// adapted from gzh-cli's pkg/cache/lru_cache.go, trimmed of the TTL and
// background-cleanup goroutine that package carries: package-index
// results don't go stale within a single detector run, and nothing here
// needs to survive past it (spec.md's Non-goal on persistent caching of
// LLM answers extends naturally to package-index memoization).
type Cached struct {
	inner Index

	mu        sync.Mutex
	capacity  int
	entries   map[string]*list.Element
	evictList *list.List
}

type cacheEntry struct {
	name    string
	version string
	found   bool
}

// NewCached wraps inner with a memoizing layer capped at capacity
// distinct package names.
func NewCached(inner Index, capacity int) *Cached {
	if capacity <= 0 {
		capacity = 256
	}
	return &Cached{
		inner:     inner,
		capacity:  capacity,
		entries:   make(map[string]*list.Element),
		evictList: list.New(),
	}
}

func (c *Cached) HasPackage(name string) bool {
	return c.inner.HasPackage(name)
}

func (c *Cached) GetLatestVersion(name string) (string, bool) {
	c.mu.Lock()
	if el, ok := c.entries[name]; ok {
		c.evictList.MoveToFront(el)
		entry := el.Value.(*cacheEntry)
		c.mu.Unlock()
		return entry.version, entry.found
	}
	c.mu.Unlock()

	version, found := c.inner.GetLatestVersion(name)

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[name]; ok {
		c.evictList.MoveToFront(el)
		return version, found
	}
	el := c.evictList.PushFront(&cacheEntry{name: name, version: version, found: found})
	c.entries[name] = el
	if c.evictList.Len() > c.capacity {
		oldest := c.evictList.Back()
		if oldest != nil {
			c.evictList.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).name)
		}
	}
	return version, found
}
