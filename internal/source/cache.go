package source

import (
	"sync"
	"time"
)

// TTLCache is a small keyed cache for fetched tables: key = query
// parameters, value = data plus fetch timestamp. Entries older than the TTL
// are rejected on read, so a miss always triggers a refresh.
type TTLCache[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]cacheEntry[T]
	now   func() time.Time
}

type cacheEntry[T any] struct {
	data      T
	fetchedAt time.Time
}

func NewTTLCache[T any](ttl time.Duration) *TTLCache[T] {
	return &TTLCache[T]{
		ttl:   ttl,
		items: make(map[string]cacheEntry[T]),
		now:   time.Now,
	}
}

func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	entry, exists := c.items[key]
	if !exists {
		return zero, false
	}
	if c.now().Sub(entry.fetchedAt) > c.ttl {
		delete(c.items, key)
		return zero, false
	}
	return entry.data, true
}

func (c *TTLCache[T]) Set(key string, data T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry[T]{data: data, fetchedAt: c.now()}
}

func (c *TTLCache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// CleanExpired drops every stale entry and reports how many were removed.
func (c *TTLCache[T]) CleanExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	cutoff := c.now().Add(-c.ttl)
	for key, entry := range c.items {
		if entry.fetchedAt.Before(cutoff) {
			delete(c.items, key)
			removed++
		}
	}
	return removed
}

func (c *TTLCache[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
