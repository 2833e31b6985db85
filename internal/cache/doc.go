// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

/*
Package cache provides a thread-safe, typed in-memory cache with TTL expiry.

The statistics service uses it to hold the most recent dashboard snapshot
when stats.cache_ttl is positive, so that a burst of dashboard loads costs a
single round of store aggregations.

# Behavior

  - Entries expire lazily on Get and eagerly in a background sweep.
  - Hits, misses and evictions are counted; see GetStats and HitRate.
  - Close stops the sweeper goroutine.

# Example

	c := cache.New[*models.Statistics](30 * time.Second)
	defer c.Close()

	if stats, ok := c.Get(key); ok {
	    return stats, nil
	}
*/
package cache
