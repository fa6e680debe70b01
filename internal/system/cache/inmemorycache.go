/*
 * Copyright (c) 2025, Ember Auth Project.
 *
 * The Ember Auth Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"container/list"
	"sync"
	"time"
)

// inMemoryCacheEntry represents an entry in the in-memory cache.
type inMemoryCacheEntry[T any] struct {
	key         CacheKey
	value       T
	expiryTime  time.Time
	listElement *list.Element
}

// inMemoryCache implements CacheInterface as an in-memory cache with TTL and LRU eviction.
type inMemoryCache[T any] struct {
	enabled     bool
	cacheName   string
	cache       map[CacheKey]*inMemoryCacheEntry[T]
	accessOrder *list.List
	size        int
	ttl         time.Duration
	mu          sync.RWMutex
}

// newInMemoryCache creates a new instance of inMemoryCache.
func newInMemoryCache[T any](cacheName string, enabled bool, size int, ttl time.Duration) CacheInterface[T] {
	if !enabled {
		return &inMemoryCache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	return &inMemoryCache[T]{
		enabled:     true,
		cacheName:   cacheName,
		cache:       make(map[CacheKey]*inMemoryCacheEntry[T]),
		accessOrder: list.New(),
		size:        size,
		ttl:         ttl,
	}
}

// GetName returns the name of the cache.
func (c *inMemoryCache[T]) GetName() string {
	return c.cacheName
}

// IsEnabled returns whether the cache is enabled.
func (c *inMemoryCache[T]) IsEnabled() bool {
	return c.enabled
}

// Set adds or replaces a cache entry, evicting the least recently used entry when full.
func (c *inMemoryCache[T]) Set(key CacheKey, value T) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.cache[key]; ok {
		existing.value = value
		existing.expiryTime = time.Now().Add(c.ttl)
		c.accessOrder.MoveToFront(existing.listElement)
		return nil
	}

	if len(c.cache) >= c.size {
		c.evictOldest()
	}

	entry := &inMemoryCacheEntry[T]{
		key:        key,
		value:      value,
		expiryTime: time.Now().Add(c.ttl),
	}
	entry.listElement = c.accessOrder.PushFront(entry)
	c.cache[key] = entry
	return nil
}

// Get retrieves a cache entry, reporting whether a live entry was found.
func (c *inMemoryCache[T]) Get(key CacheKey) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache[key]
	if !ok {
		return zero, false
	}

	if time.Now().After(entry.expiryTime) {
		c.removeEntry(entry)
		return zero, false
	}

	c.accessOrder.MoveToFront(entry.listElement)
	return entry.value, true
}

// Delete removes a cache entry.
func (c *inMemoryCache[T]) Delete(key CacheKey) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.cache[key]; ok {
		c.removeEntry(entry)
	}
	return nil
}

// Clear removes all cache entries.
func (c *inMemoryCache[T]) Clear() error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[CacheKey]*inMemoryCacheEntry[T])
	c.accessOrder.Init()
	return nil
}

// CleanupExpired removes all expired cache entries.
func (c *inMemoryCache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.cache {
		if now.After(entry.expiryTime) {
			c.removeEntry(entry)
		}
	}
}

// evictOldest removes the least recently used entry. Caller must hold the lock.
func (c *inMemoryCache[T]) evictOldest() {
	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}
	c.removeEntry(oldest.Value.(*inMemoryCacheEntry[T]))
}

// removeEntry removes an entry from the cache. Caller must hold the lock.
func (c *inMemoryCache[T]) removeEntry(entry *inMemoryCacheEntry[T]) {
	c.accessOrder.Remove(entry.listElement)
	delete(c.cache, entry.key)
}
