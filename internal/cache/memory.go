package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache holds serialized document analyses in process memory. It is
// the fast layer: a corpus recompute re-reads every document through it, so
// entries expire on the analysis TTL rather than living for the process
// lifetime.
type MemoryCache struct {
	store      *gocache.Cache
	defaultTTL time.Duration
}

// NewMemoryCache creates a memory cache whose entries expire after
// defaultTTL; cleanupInterval controls how often expired analyses are swept
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		store:      gocache.New(defaultTTL, cleanupInterval),
		defaultTTL: defaultTTL,
	}
}

func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	return val.([]byte), true
}

// Set stores an analysis. A non-positive ttl means the analysis TTL the
// cache was configured with.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.store.Set(key, value, ttl)
	return nil
}

func (c *MemoryCache) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

func (c *MemoryCache) Clear() error {
	c.store.Flush()
	return nil
}

// Entries reports how many analyses are currently cached, expired ones
// included until the next sweep
func (c *MemoryCache) Entries() int {
	return c.store.ItemCount()
}
