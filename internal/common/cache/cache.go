package cache

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

const (
	defaultMaxSize = 512
	defaultTTL     = 30 * time.Second
)

// Config configures a read-through cache
type Config struct {
	// MaxSize is the maximum number of entries kept
	MaxSize int

	// TTL is how long an entry stays valid. Writers invalidate explicitly,
	// the TTL only bounds staleness from writes made by other processes.
	TTL time.Duration

	Clock clock.Clock
}

type entry struct {
	value    any
	storedAt time.Time
}

// Cache is a get-or-fetch cache with explicit invalidation.
// Concurrent misses for the same key share one fetch.
type Cache struct {
	entries *lru.Cache[string, entry]
	group   singleflight.Group
	ttl     time.Duration
	clock   clock.Clock

	mu  sync.Mutex
	gen map[string]uint64
}

// New creates a cache. A nil config uses defaults.
func New(cfg *Config) *Cache {
	if cfg == nil {
		cfg = &Config{}
	}
	size := cfg.MaxSize
	if size <= 0 {
		size = defaultMaxSize
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	// lru.New only errors on a non-positive size
	entries, _ := lru.New[string, entry](size)

	return &Cache{
		entries: entries,
		ttl:     ttl,
		clock:   clk,
		gen:     make(map[string]uint64),
	}
}

// Fetch returns the cached value for key or loads it with fetch.
// Errors are never cached.
func Fetch[V any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (V, error)) (V, error) {
	if c == nil {
		return fetch(ctx)
	}

	if e, ok := c.entries.Get(key); ok {
		if c.clock.Now().Sub(e.storedAt) < c.ttl {
			if v, ok := e.value.(V); ok {
				return v, nil
			}
		}
		c.entries.Remove(key)
	}

	gen := c.generation(key)
	res, err, _ := c.group.Do(key, func() (any, error) {
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		// a write that landed during the fetch wins over the fetched value
		if c.generation(key) == gen {
			c.entries.Add(key, entry{value: v, storedAt: c.clock.Now()})
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Invalidate drops key so the next Fetch reloads it
func (c *Cache) Invalidate(keys ...string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	for _, k := range keys {
		c.gen[k]++
		c.entries.Remove(k)
	}
	c.mu.Unlock()
}

// Purge drops everything
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.mu.Lock()
	for _, k := range c.entries.Keys() {
		c.gen[k]++
	}
	c.entries.Purge()
	c.mu.Unlock()
}

// Len reports the number of entries, expired ones included.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

func (c *Cache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen[key]
}
