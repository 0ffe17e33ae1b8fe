package resolve

import (
	"sync"

	"newsletter_pipeline/internal/domain"
)

// Cache memoizes resolutions for the lifetime of one pipeline run. Each
// run owns its own instance; nothing is shared across runs.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	hits    int
}

type cacheEntry struct {
	done   chan struct{}
	result domain.ResolvedLink
}

func NewCache() *Cache {
	return &Cache{entries: map[string]*cacheEntry{}}
}

// Do returns the memoized result for key, running fn at most once. When
// concurrent callers race on the same key, one runs fn and the rest
// block until its result is published.
func (c *Cache) Do(key string, fn func() domain.ResolvedLink) domain.ResolvedLink {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		<-entry.done
		return entry.result
	}
	entry := &cacheEntry{done: make(chan struct{})}
	c.entries[key] = entry
	c.mu.Unlock()

	entry.result = fn()
	close(entry.done)
	return entry.result
}

// Hits returns how many lookups were served without running fn.
func (c *Cache) Hits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits
}

// Size returns the number of distinct keys resolved so far.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
