package cache

import (
	"fmt"
	"hash/fnv"
	"sort"
	"sync"
	"time"
)

// Results is a bounded, TTL-bound cache for computed recommendation sets.
// When full, inserting a new key evicts the entry that was inserted earliest.
type Results[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	maxSize int
	ttl     time.Duration

	now func() time.Time
}

type entry[V any] struct {
	value      V
	insertedAt time.Time
}

// NewResults creates a cache holding at most maxSize entries, each valid for
// ttl after insertion.
func NewResults[V any](maxSize int, ttl time.Duration) *Results[V] {
	return &Results[V]{
		entries: make(map[string]entry[V]),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached value for key if present and unexpired. Expired
// entries are evicted on access.
func (c *Results[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	if c.now().Sub(e.insertedAt) > c.ttl {
		delete(c.entries, key)
		var zero V
		return zero, false
	}

	return e.value, true
}

// Set stores value under key, evicting the oldest entry if the cache is at
// capacity and key is not already present.
func (c *Results[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = entry[V]{
		value:      value,
		insertedAt: c.now(),
	}
}

// Clear discards all entries.
func (c *Results[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[V])
}

// Len reports the number of entries currently held, including any that have
// expired but not yet been evicted.
func (c *Results[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Results[V]) evictOldest() {
	var oldestKey string
	var oldestAt time.Time

	first := true
	for key, e := range c.entries {
		if first || e.insertedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = e.insertedAt
			first = false
		}
	}

	if !first {
		delete(c.entries, oldestKey)
	}
}

// Signature builds a deterministic cache key from an operation name and its
// parameters. Scalar parameters are rendered directly; composite values are
// hashed so that unbounded inputs cannot produce unbounded keys.
func Signature(op string, params map[string]any) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	signature := op
	for _, key := range keys {
		signature += fmt.Sprintf("|%s=%s", key, renderParam(params[key]))
	}

	return signature
}

func renderParam(value any) string {
	switch value.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", value)
	default:
		h := fnv.New64a()
		_, _ = fmt.Fprintf(h, "%v", value)
		return fmt.Sprintf("h%x", h.Sum64())
	}
}
