// Package service contains the business logic of the combo pricing service.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/combo-pricing-service/internal/metrics"
	"github.com/guttosm/combo-pricing-service/internal/service/cache"
)

const defaultShards = 16

// ShardedCache is a TTL LRU cache keyed by string, split into shards to keep
// lock contention low. A single janitor goroutine sweeps expired entries.
type ShardedCache[V any] struct {
	shards   []*ttlCache[V]
	mask     uint32
	stopCh   chan struct{}
	stopOnce sync.Once
}

var _ cache.CacheWithMetrics[string, int] = (*ShardedCache[int])(nil)

// NewShardedCache creates a cache holding about capacity entries for ttl.
// numShards is rounded up to a power of two.
func NewShardedCache[V any](capacity int, ttl time.Duration, numShards int) *ShardedCache[V] {
	if numShards <= 0 {
		numShards = defaultShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	sc := &ShardedCache[V]{
		shards: make([]*ttlCache[V], n),
		mask:   uint32(n - 1),
		stopCh: make(chan struct{}),
	}
	for i := range sc.shards {
		sc.shards[i] = newTTLCache[V](perShard, ttl)
	}
	metrics.UpdateCacheMetrics(0, perShard*n)

	go sc.janitor(sweepInterval(ttl))
	return sc
}

func sweepInterval(ttl time.Duration) time.Duration {
	switch {
	case ttl < time.Second:
		return time.Second
	case ttl > time.Minute:
		return time.Minute
	default:
		return ttl
	}
}

func (sc *ShardedCache[V]) shard(key string) *ttlCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return sc.shards[h.Sum32()&sc.mask]
}

// Get retrieves a live value.
func (sc *ShardedCache[V]) Get(key string) (V, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a value, evicting the shard's least recently used entry when full.
func (sc *ShardedCache[V]) Set(key string, value V) {
	sc.shard(key).Set(key, value)
}

// Invalidate removes a key.
func (sc *ShardedCache[V]) Invalidate(key string) {
	sc.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (sc *ShardedCache[V]) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop ends the janitor goroutine. Safe to call more than once.
func (sc *ShardedCache[V]) Stop() {
	sc.stopOnce.Do(func() { close(sc.stopCh) })
}

// Metrics returns aggregated metrics from all shards.
func (sc *ShardedCache[V]) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

func (sc *ShardedCache[V]) janitor(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			for _, s := range sc.shards {
				s.cleanup()
			}
			m := sc.Metrics()
			metrics.UpdateCacheMetrics(m.Size, m.Capacity)
		case <-sc.stopCh:
			return
		}
	}
}

// ttlCache is one shard: an LRU list plus per-entry expiry.
type ttlCache[V any] struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry[V]
	head      *cacheEntry[V]
	tail      *cacheEntry[V]
	now       func() time.Time
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type cacheEntry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *cacheEntry[V]
	next      *cacheEntry[V]
}

func newTTLCache[V any](capacity int, ttl time.Duration) *ttlCache[V] {
	return &ttlCache[V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry[V], capacity),
		now:      time.Now,
	}
}

// Metrics returns current shard metrics.
func (c *ttlCache[V]) Metrics() cache.Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

// Get returns the value for key unless it is missing or expired.
func (c *ttlCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	entry, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "miss")
		return zero, false
	}
	if c.now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.mu.Unlock()
		c.misses.Add(1)
		metrics.RecordCacheOperation("get", "expired")
		return zero, false
	}
	c.moveToFront(entry)
	value := entry.value
	c.mu.Unlock()

	c.hits.Add(1)
	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set adds or refreshes key.
func (c *ttlCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry[V]{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		c.evictions.Add(1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes key if present.
func (c *ttlCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops every entry and resets counters.
func (c *ttlCache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]*cacheEntry[V], c.capacity)
	c.head, c.tail = nil, nil
	c.mu.Unlock()

	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	metrics.RecordCacheOperation("clear", "success")
}

func (c *ttlCache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.now()
	for _, entry := range c.items {
		if current.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
}

func (c *ttlCache[V]) removeEntry(entry *cacheEntry[V]) {
	if entry == nil {
		return
	}
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache[V]) moveToFront(entry *cacheEntry[V]) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ttlCache[V]) addToFront(entry *cacheEntry[V]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache[V]) unlink(entry *cacheEntry[V]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev, entry.next = nil, nil
}
