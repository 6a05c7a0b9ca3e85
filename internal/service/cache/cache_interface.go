// Package cache defines the contracts of the in-process caches.
package cache

// Cache is a keyed cache with expiring entries.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Invalidate(key K)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRatio returns hits over lookups, or 0 before the first lookup.
func (m Metrics) HitRatio() float64 {
	lookups := m.Hits + m.Misses
	if lookups == 0 {
		return 0
	}
	return float64(m.Hits) / float64(lookups)
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[K comparable, V any] interface {
	Cache[K, V]
	Metrics() Metrics
}
