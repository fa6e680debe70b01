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

// Package store provides functionality for handling client record persistence.
package store

import (
	"fmt"
	"strings"

	"github.com/emberauth/ember/internal/client/constants"
	"github.com/emberauth/ember/internal/client/model"
	"github.com/emberauth/ember/internal/system/database/provider"
	"github.com/emberauth/ember/internal/system/log"
)

const loggerComponentName = "ClientStore"

// ClientStoreInterface defines the interface for reading registered clients.
type ClientStoreInterface interface {
	GetClientByID(clientID string) (model.Client, error)
}

// ClientStore implements the ClientStoreInterface over the runtime database.
type ClientStore struct {
	DBProvider provider.DBProviderInterface
}

// NewClientStore creates a new instance of ClientStore.
func NewClientStore() ClientStoreInterface {
	return &ClientStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// GetClientByID retrieves a client record by its client ID.
// Returns constants.ErrClientNotFound when no record matches.
func (cs *ClientStore) GetClientByID(clientID string) (model.Client, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := cs.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.Client{}, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(constants.QueryGetClientByClientID, clientID)
	if err != nil {
		return model.Client{}, fmt.Errorf("error while retrieving client: %w", err)
	}
	if len(results) == 0 {
		return model.Client{}, constants.ErrClientNotFound
	}
	if len(results) != 1 {
		return model.Client{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}
	row := results[0]

	clientIDValue, ok := row["client_id"].(string)
	if !ok {
		return model.Client{}, fmt.Errorf("failed to parse client_id as string")
	}
	clientSecret, ok := row["client_secret"].(string)
	if !ok {
		return model.Client{}, fmt.Errorf("failed to parse client_secret as string")
	}
	callbackURL, ok := row["callback_url"].(string)
	if !ok {
		return model.Client{}, fmt.Errorf("failed to parse callback_url as string")
	}

	grants := []string{}
	if grantsStr, ok := row["grants"].(string); ok && grantsStr != "" {
		grants = strings.Split(grantsStr, ",")
	}

	return model.Client{
		ClientID:     clientIDValue,
		ClientSecret: clientSecret,
		CallbackURL:  callbackURL,
		Grants:       grants,
	}, nil
}
