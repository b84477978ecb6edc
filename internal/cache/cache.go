// Package cache provides the process-wide read-through cache shared by the
// list and point-lookup operations. Entries live in named groups so that any
// mutation of a collection can drop every derived view of it at once.
// There is no TTL: staleness is bounded only by the next successful mutation.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultGroupSize = 4096

// Cache is a set of named LRU groups. Safe for concurrent use.
type Cache struct {
	mu        sync.RWMutex
	groupSize int
	groups    map[string]*lru.Cache[string, any]
}

// New creates a Cache whose groups hold up to groupSize entries each.
// groupSize <= 0 falls back to the default.
func New(groupSize int) *Cache {
	if groupSize <= 0 {
		groupSize = defaultGroupSize
	}
	return &Cache{
		groupSize: groupSize,
		groups:    make(map[string]*lru.Cache[string, any]),
	}
}

// group returns the LRU for name, creating it on first use.
func (c *Cache) group(name string) *lru.Cache[string, any] {
	c.mu.RLock()
	g, ok := c.groups[name]
	c.mu.RUnlock()
	if ok {
		return g
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if g, ok = c.groups[name]; ok {
		return g
	}
	// lru.New only fails on non-positive size, which New guards against.
	g, _ = lru.New[string, any](c.groupSize)
	c.groups[name] = g
	return g
}

// Get returns the cached value for (group, key), if present.
func (c *Cache) Get(group, key string) (any, bool) {
	return c.group(group).Get(key)
}

// Put stores a value under (group, key), replacing any previous entry.
func (c *Cache) Put(group, key string, v any) {
	c.group(group).Add(key, v)
}

// Evict drops the single entry under (group, key).
func (c *Cache) Evict(group, key string) {
	c.group(group).Remove(key)
}

// Invalidate drops every entry in the group. Mutating operations call this
// before returning so a racing reader can never observe the stale view past
// the mutation's response.
func (c *Cache) Invalidate(group string) {
	c.mu.RLock()
	g, ok := c.groups[group]
	c.mu.RUnlock()
	if ok {
		g.Purge()
	}
}

// Store is the subset of Cache the read-through helper needs. Consumers
// declare it (or a superset) so they can swap the cache in tests.
type Store interface {
	Get(group, key string) (any, bool)
	Put(group, key string, v any)
	Evict(group, key string)
}

// Through is the read-through primitive: on hit it returns the stored value
// without invoking compute; on miss it invokes compute, stores the result
// and returns it. Errors from compute are returned and never cached.
func Through[T any](c Store, group, key string, compute func() (T, error)) (T, error) {
	if v, ok := c.Get(group, key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
		// Mixed value types under one key indicate a key-derivation bug;
		// fall through and recompute rather than returning garbage.
		c.Evict(group, key)
	}

	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Put(group, key, v)
	return v, nil
}
