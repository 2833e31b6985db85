// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestCache[V any](t *testing.T, ttl time.Duration) (*Cache[V], *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[V](ttl)
	c.now = clock.Now
	t.Cleanup(c.Close)
	return c, clock
}

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache[string](t, time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists = c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()
	c, clock := newTestCache[int](t, time.Second)

	c.Set("key1", 1)
	if _, ok := c.Get("key1"); !ok {
		t.Fatal("Expected key1 to exist immediately after set")
	}

	clock.Advance(2 * time.Second)
	if _, ok := c.Get("key1"); ok {
		t.Error("Expected key1 to be expired")
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	t.Parallel()
	c, clock := newTestCache[string](t, time.Second)

	c.SetWithTTL("long", "v", time.Hour)
	clock.Advance(time.Minute)
	if _, ok := c.Get("long"); !ok {
		t.Error("custom TTL entry should still be cached")
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache[string](t, time.Minute)

	c.Set("key1", "value1")
	c.Delete("key1")
	if _, ok := c.Get("key1"); ok {
		t.Error("Expected key1 to be deleted")
	}

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), "v")
	}
	c.Clear()
	if got := c.GetStats().TotalKeys; got != 0 {
		t.Errorf("TotalKeys after Clear = %d, want 0", got)
	}
}

func TestCacheHitRate(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache[string](t, time.Minute)

	if c.HitRate() != 0 {
		t.Errorf("empty cache hit rate = %v, want 0", c.HitRate())
	}

	c.Set("a", "1")
	c.Get("a")
	c.Get("a")
	c.Get("a")
	c.Get("missing")

	if got := c.HitRate(); got != 75 {
		t.Errorf("HitRate() = %v, want 75", got)
	}
}

func TestCacheCleanup(t *testing.T) {
	t.Parallel()
	c, clock := newTestCache[string](t, time.Second)

	c.Set("old", "v")
	clock.Advance(2 * time.Second)
	c.Set("new", "v")
	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	t.Parallel()
	c, _ := newTestCache[int](t, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%5)
			c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if got := c.GetStats().Hits; got != 20 {
		t.Errorf("Hits = %d, want 20", got)
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	t.Parallel()
	c := New[string](time.Minute)
	c.Close()
	c.Close()
}
