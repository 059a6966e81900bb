package source

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCacheHitAndMiss(t *testing.T) {
	cache := NewTTLCache[[]string](time.Minute)

	_, ok := cache.Get("registry")
	assert.False(t, ok)

	cache.Set("registry", []string{"a", "b"})
	got, ok := cache.Get("registry")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Now()
	cache := NewTTLCache[int](time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set("k", 42)

	got, ok := cache.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	now = now.Add(59 * time.Second)
	_, ok = cache.Get("k")
	assert.True(t, ok, "entry within TTL must survive")

	now = now.Add(2 * time.Second)
	_, ok = cache.Get("k")
	assert.False(t, ok, "entry past TTL must miss")
	assert.Zero(t, cache.Size(), "expired entry is dropped on read")
}

func TestTTLCacheKeyIsolation(t *testing.T) {
	cache := NewTTLCache[int](time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)

	cache.Invalidate("a")

	_, ok := cache.Get("a")
	assert.False(t, ok)
	got, ok := cache.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestTTLCacheCleanExpired(t *testing.T) {
	now := time.Now()
	cache := NewTTLCache[int](time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set("old", 1)
	now = now.Add(2 * time.Minute)
	cache.Set("fresh", 2)

	removed := cache.CleanExpired()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, cache.Size())

	_, ok := cache.Get("fresh")
	assert.True(t, ok)
}
