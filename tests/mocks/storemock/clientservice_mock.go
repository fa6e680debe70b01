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

// Package storemock provides mock implementations of the store and service
// interfaces for testing.
package storemock

import (
	"github.com/emberauth/ember/internal/client/model"
	"github.com/emberauth/ember/internal/system/error/serviceerror"
)

// MockClientService is a mock implementation of the ClientServiceInterface.
type MockClientService struct {
	// MockResolveClient defines the behavior for the ResolveClient method.
	MockResolveClient func(clientID, clientSecret string) (*model.ClientView, *serviceerror.ServiceError)

	// ResolveClientCalls tracks the arguments passed to ResolveClient.
	ResolveClientCalls []struct {
		ClientID     string
		ClientSecret string
	}
}

// ResolveClient mocks the ResolveClient method of the ClientServiceInterface.
func (m *MockClientService) ResolveClient(clientID, clientSecret string) (
	*model.ClientView, *serviceerror.ServiceError) {
	m.ResolveClientCalls = append(m.ResolveClientCalls, struct {
		ClientID     string
		ClientSecret string
	}{clientID, clientSecret})

	if m.MockResolveClient != nil {
		return m.MockResolveClient(clientID, clientSecret)
	}
	return &model.ClientView{ID: clientID}, nil
}
