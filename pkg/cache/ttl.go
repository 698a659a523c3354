package cache

import (
	"container/list"
	"sync"
	"time"
)

type ttlEntry[K comparable, V any] struct {
	key      K
	value    V
	storedAt time.Time
}

// TTLCache is a thread-safe cache with per-entry expiry and insertion-order eviction.
// Unlike an LRU, reads never refresh an entry's position: once the cache grows past
// its capacity the entry that was inserted first is dropped, whether or not it was
// read recently.
type TTLCache[K comparable, V any] struct {
	capacity int
	ttl      time.Duration
	items    map[K]*list.Element
	order    *list.List
	mu       sync.Mutex
	now      func() time.Time
	onEvict  func(key K, value V) // Called for capacity and expiry evictions
}

// Option configures a TTLCache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces time.Now. Tests use it to move time forward deterministically.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// NewTTLCache creates a cache holding at most capacity entries, each fresh for ttl.
// The capacity and ttl must be positive, otherwise it panics.
func NewTTLCache[K comparable, V any](capacity int, ttl time.Duration, opts ...Option) *TTLCache[K, V] {
	if capacity <= 0 {
		panic("TTL cache capacity must be positive")
	}
	if ttl <= 0 {
		panic("TTL cache ttl must be positive")
	}

	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	return &TTLCache[K, V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[K]*list.Element),
		order:    list.New(),
		now:      o.now,
	}
}

// SetEvictCallback sets a callback function that is called when items are evicted
// because of capacity or expiry. Explicit Remove and Clear calls do not trigger it.
func (c *TTLCache[K, V]) SetEvictCallback(fn func(key K, value V)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get returns a fresh value for key. Expired entries are removed on access.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	elem, ok := c.items[key]
	if !ok {
		return zero, false
	}

	entry := elem.Value.(*ttlEntry[K, V])
	if c.now().Sub(entry.storedAt) >= c.ttl {
		c.removeElement(elem, true)
		return zero, false
	}

	return entry.value, true
}

// Put stores value under key and stamps it with the current time.
// Updating an existing key keeps its original insertion position.
// Returns the previous value if it existed, and a boolean indicating if it existed.
func (c *TTLCache[K, V]) Put(key K, value V) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*ttlEntry[K, V])
		oldValue := entry.value
		entry.value = value
		entry.storedAt = c.now()
		return oldValue, true
	}

	entry := &ttlEntry[K, V]{key: key, value: value, storedAt: c.now()}
	c.items[key] = c.order.PushBack(entry)

	for c.order.Len() > c.capacity {
		c.evictOldest()
	}

	var zero V
	return zero, false
}

// Remove removes an item from the cache.
// Returns the removed value and true if it existed, zero value and false otherwise.
func (c *TTLCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem, false)
		entry := elem.Value.(*ttlEntry[K, V])
		return entry.value, true
	}

	var zero V
	return zero, false
}

// Len reports the number of stored entries, including expired ones not yet purged.
func (c *TTLCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge drops every expired entry and returns how many were removed.
func (c *TTLCache[K, V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for elem := c.order.Front(); elem != nil; {
		next := elem.Next()
		entry := elem.Value.(*ttlEntry[K, V])
		if now.Sub(entry.storedAt) >= c.ttl {
			c.removeElement(elem, true)
			removed++
		}
		elem = next
	}
	return removed
}

// Clear removes all items from the cache.
func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order.Init()
}

// Must be called with lock held.
func (c *TTLCache[K, V]) evictOldest() {
	if elem := c.order.Front(); elem != nil {
		c.removeElement(elem, true)
	}
}

// Must be called with lock held.
func (c *TTLCache[K, V]) removeElement(elem *list.Element, notify bool) {
	c.order.Remove(elem)
	entry := elem.Value.(*ttlEntry[K, V])
	delete(c.items, entry.key)

	if notify && c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
