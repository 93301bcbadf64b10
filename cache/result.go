package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// ResultCache holds computed results for a fixed TTL. Hits do not extend
// the lifetime of an entry and expired entries are never returned.
type ResultCache[V any] struct {
	cache *ttlcache.Cache[string, V]
}

// NewResultCache creates a cache with the given TTL. A zero capacity means
// unbounded.
func NewResultCache[V any](ttl time.Duration, capacity uint64) *ResultCache[V] {
	opts := []ttlcache.Option[string, V]{
		ttlcache.WithTTL[string, V](ttl),
		ttlcache.WithDisableTouchOnHit[string, V](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, V](capacity))
	}

	return &ResultCache[V]{
		cache: ttlcache.New(opts...),
	}
}

// Start evicts expired entries in the background until ctx is done
func (c *ResultCache[V]) Start(ctx context.Context) {
	go c.cache.Start()
	go func() {
		<-ctx.Done()
		c.cache.Stop()
	}()
}

func (c *ResultCache[V]) Get(key string) (V, bool) {
	item := c.cache.Get(key)
	if item == nil {
		var zero V
		return zero, false
	}

	return item.Value(), true
}

func (c *ResultCache[V]) Set(key string, value V) {
	c.cache.Set(key, value, ttlcache.DefaultTTL)
}

func (c *ResultCache[V]) Delete(key string) {
	c.cache.Delete(key)
}

// Len counts stored entries, including expired ones not evicted yet
func (c *ResultCache[V]) Len() int {
	return c.cache.Len()
}

func (c *ResultCache[V]) Values() []V {
	items := c.cache.Items()
	values := make([]V, 0, len(items))
	for _, item := range items {
		if item.IsExpired() {
			continue
		}
		values = append(values, item.Value())
	}
	return values
}

func (c *ResultCache[V]) Purge() {
	c.cache.DeleteAll()
}
