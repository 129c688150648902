package config

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache holds one immutable Store per configuration source directory.
// First population runs under singleflight so concurrent callers share a
// single parse; afterwards reads are lock-free apart from an RLock.
type Cache struct {
	mu     sync.RWMutex
	stores map[string]*Store
	group  singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{stores: make(map[string]*Store)}
}

// Store returns the cached Store for a source directory, loading it on
// first use.
func (c *Cache) Store(dir string) (*Store, error) {
	c.mu.RLock()
	s := c.stores[dir]
	c.mu.RUnlock()
	if s != nil {
		return s, nil
	}

	v, err, _ := c.group.Do(dir, func() (interface{}, error) {
		// Re-check under the flight: a Reload may have raced us in.
		c.mu.RLock()
		cached := c.stores[dir]
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		loaded, err := LoadStore(dir)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.stores[dir] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Store), nil
}

// Reload drops the cached Store for a source directory and loads it again.
// This is the only way cached configuration changes; there is no implicit
// invalidation.
func (c *Cache) Reload(dir string) (*Store, error) {
	c.mu.Lock()
	delete(c.stores, dir)
	c.mu.Unlock()
	return c.Store(dir)
}
