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

// Package service provides the client registry service for resolving OAuth clients.
package service

import (
	"crypto/subtle"
	"errors"

	"github.com/emberauth/ember/internal/client/constants"
	"github.com/emberauth/ember/internal/client/model"
	"github.com/emberauth/ember/internal/client/store"
	"github.com/emberauth/ember/internal/system/error/serviceerror"
	"github.com/emberauth/ember/internal/system/log"
)

const loggerComponentName = "ClientService"

// ClientServiceInterface defines the interface for the client registry.
type ClientServiceInterface interface {
	// ResolveClient resolves a client by its ID. A non-empty clientSecret must
	// also match the stored secret (confidential-client verification); an empty
	// secret matches on the client ID alone (public-client flow).
	ResolveClient(clientID, clientSecret string) (*model.ClientView, *serviceerror.ServiceError)
}

// ClientService implements the ClientServiceInterface.
type ClientService struct {
	ClientStore store.ClientStoreInterface
}

// NewClientService creates a new instance of ClientService backed by the cached client store.
func NewClientService() ClientServiceInterface {
	return &ClientService{
		ClientStore: store.NewCacheBackedClientStore(),
	}
}

// ResolveClient resolves a client by its ID and optional secret.
// A secret mismatch is reported as ErrorClientNotFound, indistinguishable from
// a missing client, so callers cannot probe for client existence.
func (cs *ClientService) ResolveClient(clientID, clientSecret string) (
	*model.ClientView, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if clientID == "" {
		return nil, &constants.ErrorClientNotFound
	}

	client, err := cs.ClientStore.GetClientByID(clientID)
	if err != nil {
		if errors.Is(err, constants.ErrClientNotFound) {
			logger.Debug("Client not found", log.String(log.LoggerKeyClientID, clientID))
			return nil, &constants.ErrorClientNotFound
		}
		logger.Error("Failed to retrieve client", log.Error(err),
			log.String(log.LoggerKeyClientID, clientID))
		return nil, &constants.ErrorInternalClientLookupError
	}

	if clientSecret != "" &&
		subtle.ConstantTimeCompare([]byte(client.ClientSecret), []byte(clientSecret)) != 1 {
		logger.Debug("Client secret mismatch", log.String(log.LoggerKeyClientID, clientID))
		return nil, &constants.ErrorClientNotFound
	}

	return client.ToView(), nil
}
