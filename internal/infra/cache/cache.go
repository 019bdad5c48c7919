// Package cache is a process-lifetime TTL cache for raw JSON payloads.
// Entries are never purged; a stale entry is masked on read and replaced by
// the next Put. Safe for concurrent readers with overwriting writers.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	at  time.Time
	val []byte
}

type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	group   singleflight.Group

	// now is swappable for tests.
	now func() time.Time
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key only when its age is below ttl.
// Stale entries stay in storage but read as absent.
func (c *Cache) Get(key string, ttl time.Duration) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.at) >= ttl {
		return nil, false
	}
	return e.val, true
}

// Put overwrites unconditionally and resets the entry's timestamp.
func (c *Cache) Put(key string, val []byte) {
	c.mu.Lock()
	c.entries[key] = entry{at: c.now(), val: val}
	c.mu.Unlock()
}

// GetOrFetch returns the fresh cached value or calls fetch to fill the
// cache. Concurrent misses for the same key are collapsed into one fetch.
func (c *Cache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) ([]byte, error)) ([]byte, bool, error) {
	if val, ok := c.Get(key, ttl); ok {
		return val, true, nil
	}
	val, err, _ := c.group.Do(key, func() (any, error) {
		if val, ok := c.Get(key, ttl); ok {
			return val, nil
		}
		fetched, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.Put(key, fetched)
		return fetched, nil
	})
	if err != nil {
		return nil, false, err
	}
	return val.([]byte), false, nil
}
