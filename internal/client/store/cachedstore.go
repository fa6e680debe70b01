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

package store

import (
	"github.com/emberauth/ember/internal/client/model"
	"github.com/emberauth/ember/internal/system/cache"
)

// CacheBackedClientStore is a ClientStoreInterface implementation that caches
// client lookups. Clients are read-mostly and outlive all issued credentials,
// so cached records are evicted by TTL only.
type CacheBackedClientStore struct {
	ClientCache cache.CacheInterface[model.Client]
	Store       ClientStoreInterface
}

// NewCacheBackedClientStore creates a new instance of CacheBackedClientStore.
func NewCacheBackedClientStore() ClientStoreInterface {
	return &CacheBackedClientStore{
		ClientCache: cache.GetCache[model.Client]("ClientByIDCache"),
		Store:       NewClientStore(),
	}
}

// GetClientByID retrieves a client record by its client ID, using the cache if available.
func (cs *CacheBackedClientStore) GetClientByID(clientID string) (model.Client, error) {
	cacheKey := cache.CacheKey{
		Key: clientID,
	}
	if cachedClient, ok := cs.ClientCache.Get(cacheKey); ok {
		return cachedClient, nil
	}

	client, err := cs.Store.GetClientByID(clientID)
	if err != nil {
		return model.Client{}, err
	}
	_ = cs.ClientCache.Set(cacheKey, client)

	return client, nil
}
