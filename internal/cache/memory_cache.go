package cache

import (
	"sync"
	"time"

	"thread-translator/internal/translation"
)

// DefaultSweepInterval is how often the background sweep evicts expired entries
const DefaultSweepInterval = 60 * time.Second

type entry struct {
	value     *translation.Result
	expiresAt time.Time
}

// MemoryCache is an in-process TTL cache for translation results.
// Volatile and single-node; entries die at their expiry timestamp and are
// removed lazily on access or by the background sweep.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	hits    int64
	misses  int64
	done    chan struct{}
	once    sync.Once
}

// ------------------------------------------------------------------------------------------------------
// NewMemoryCache creates a new in-memory cache and starts its sweep goroutine
func NewMemoryCache(sweepInterval time.Duration) *MemoryCache {
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}

	c := &MemoryCache{
		entries: make(map[string]entry),
		done:    make(chan struct{}),
	}

	go c.sweep(sweepInterval)

	return c
}

// ------------------------------------------------------------------------------------------------------
// Get returns the live value for key. Absent or expired entries count as a
// miss; an expired entry is evicted as a side effect.
func (c *MemoryCache) Get(key string) (*translation.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}

	if !time.Now().Before(e.expiresAt) {
		delete(c.entries, key)
		c.misses++
		return nil, false
	}

	c.hits++
	return e.value, true
}

// ------------------------------------------------------------------------------------------------------
// Set stores value under key, overwriting any previous entry
func (c *MemoryCache) Set(key string, value *translation.Result, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// ------------------------------------------------------------------------------------------------------
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// ------------------------------------------------------------------------------------------------------
// Clear removes all entries and resets the hit/miss counters
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	c.hits = 0
	c.misses = 0
}

// ------------------------------------------------------------------------------------------------------
func (c *MemoryCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	rate := 0.0
	if total > 0 {
		rate = float64(c.hits) / float64(total)
	}

	return Stats{
		Hits:    c.hits,
		Misses:  c.misses,
		HitRate: rate,
		Size:    len(c.entries),
	}
}

// ------------------------------------------------------------------------------------------------------
// Destroy stops the background sweep so the process can exit cleanly
func (c *MemoryCache) Destroy() {
	c.once.Do(func() {
		close(c.done)
	})
}

// ------------------------------------------------------------------------------------------------------
// sweep periodically removes expired entries, independent of access
func (c *MemoryCache) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.evictExpired()
		case <-c.done:
			return
		}
	}
}

// ------------------------------------------------------------------------------------------------------
func (c *MemoryCache) evictExpired() {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}
