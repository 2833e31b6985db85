// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package cache

import (
	"sync"
	"time"
)

// entry is a cached value with its expiry.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a thread-safe in-memory cache with a single TTL for all entries.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time

	statsMu sync.Mutex
	stats   Stats

	stop     chan struct{}
	stopOnce sync.Once
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries live for ttl.
//
// A background goroutine sweeps expired entries every sweep interval
// (ttl, capped at five minutes). Call Close to stop it.
//
// Example:
//
//	c := cache.New[*models.Statistics](30 * time.Second)
//	defer c.Close()
//	c.Set("fish:stats", stats)
func New[V any](ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	c.stats.LastCleanup = c.now()

	interval := ttl
	if interval <= 0 || interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	go c.cleanupLoop(interval)

	return c
}

// Get returns the value for key if present and not expired.
// Expired entries are removed and counted as both a miss and an eviction.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, exists := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !exists {
		c.record(func(s *Stats) { s.Misses++ })
		return zero, false
	}

	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		c.record(func(s *Stats) { s.Misses++; s.Evictions++ })
		return zero, false
	}

	c.record(func(s *Stats) { s.Hits++ })
	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(ttl)}
	n := int64(len(c.entries))
	c.mu.Unlock()

	c.record(func(s *Stats) { s.TotalKeys = n })
}

// Delete removes key. Missing keys are a no-op.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	n := int64(len(c.entries))
	c.mu.Unlock()

	c.record(func(s *Stats) {
		if existed {
			s.Evictions++
		}
		s.TotalKeys = n
	})
}

// Clear drops every entry, e.g. after the store has been reseeded.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]entry[V])
	c.mu.Unlock()

	c.record(func(s *Stats) {
		s.Evictions += evicted
		s.TotalKeys = 0
	})
}

// GetStats returns a snapshot of the counters.
func (c *Cache[V]) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()
	return c.stats
}

// HitRate returns the cache hit rate as a percentage
func (c *Cache[V]) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// Close stops the background sweeper. It is safe to call more than once.
func (c *Cache[V]) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup removes all expired entries
func (c *Cache[V]) cleanup() {
	now := c.now()
	c.mu.Lock()
	evicted := int64(0)
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	n := int64(len(c.entries))
	c.mu.Unlock()

	c.record(func(s *Stats) {
		s.Evictions += evicted
		s.TotalKeys = n
		s.LastCleanup = now
	})
}

func (c *Cache[V]) record(update func(*Stats)) {
	c.statsMu.Lock()
	update(&c.stats)
	c.statsMu.Unlock()
}
