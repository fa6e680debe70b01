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

// Package cache provides a centralized cache management system for read-mostly lookups.
package cache

import (
	"sync"
	"time"

	"github.com/emberauth/ember/internal/system/config"
	"github.com/emberauth/ember/internal/system/log"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 300
)

// CacheKey represents a key for the cache.
type CacheKey struct {
	Key string
}

// ToString returns the string representation of the CacheKey.
func (key CacheKey) ToString() string {
	return key.Key
}

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	CleanupExpired()
}

var (
	cacheRegistry   = make(map[string]interface{})
	cacheRegistryMu sync.Mutex
)

// GetCache returns the named cache, creating it on first use.
// Caches with the same name share a single instance per value type.
func GetCache[T any](cacheName string) CacheInterface[T] {
	cacheRegistryMu.Lock()
	defer cacheRegistryMu.Unlock()

	if existing, ok := cacheRegistry[cacheName]; ok {
		if typed, ok := existing.(CacheInterface[T]); ok {
			return typed
		}
	}

	created := newCache[T](cacheName)
	cacheRegistry[cacheName] = created
	return created
}

// ResetCacheRegistry clears all registered caches.
// This should only be used in tests to reset the shared state.
func ResetCacheRegistry() {
	cacheRegistryMu.Lock()
	defer cacheRegistryMu.Unlock()
	cacheRegistry = make(map[string]interface{})
}

// newCache creates a new cache instance honoring the configured cache properties.
func newCache[T any](cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	cacheConfig := config.GetEmberRuntime().Config.Cache
	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning empty")
		return newInMemoryCache[T](cacheName, false, 0, 0)
	}

	cacheProperty := getCacheProperty(cacheConfig, cacheName)
	if cacheProperty.Disabled {
		logger.Debug("Individual cache is disabled, returning empty")
		return newInMemoryCache[T](cacheName, false, 0, 0)
	}

	size := cacheProperty.Size
	if size <= 0 {
		size = defaultCacheSize
	}

	ttl := cacheProperty.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	logger.Debug("Initializing the cache")
	return newInMemoryCache[T](cacheName, true, size, time.Duration(ttl)*time.Second)
}

// getCacheProperty returns the configured property for the named cache.
func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{Name: cacheName}
}
