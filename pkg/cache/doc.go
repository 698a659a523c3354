// Package cache provides a generic, thread-safe cache with per-entry expiry and
// insertion-order eviction.
//
// TTLCache is used to remember answers from slow or remote authorities for a short
// window. Every entry is stamped on Put and considered fresh while its age is below
// the configured TTL. When the number of entries exceeds the capacity, the entry
// that was inserted first is evicted. Reads never change eviction order, so this
// is deliberately not an LRU.
//
// # Usage
//
//	c := cache.NewTTLCache[string, Result](100, time.Minute)
//
//	c.Put("email|a@b.c|unique|users", res)
//	if res, ok := c.Get("email|a@b.c|unique|users"); ok {
//		// fresh hit
//	}
//
// Expired entries are removed lazily on Get, or eagerly with Purge.
//
// # Eviction callbacks
//
//	c.SetEvictCallback(func(key string, value Result) {
//		log.Debug("cache eviction", "key", key)
//	})
//
// The callback fires for capacity and expiry evictions only, while the cache
// lock is held, so it must not call back into the cache.
//
// # Testing
//
// WithClock swaps time.Now for a controllable clock:
//
//	now := time.Now()
//	c := cache.NewTTLCache[string, int](10, time.Second, cache.WithClock(func() time.Time { return now }))
//	c.Put("a", 1)
//	now = now.Add(2 * time.Second)
//	_, ok := c.Get("a") // false
package cache
