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

package storemock

import (
	"github.com/emberauth/ember/internal/client/model"
)

// MockClientStore is a mock implementation of the ClientStoreInterface.
type MockClientStore struct {
	// MockGetClientByID defines the behavior for the GetClientByID method.
	MockGetClientByID func(clientID string) (model.Client, error)

	// GetClientByIDCalls tracks the arguments passed to GetClientByID.
	GetClientByIDCalls []string
}

// GetClientByID mocks the GetClientByID method of the ClientStoreInterface.
func (m *MockClientStore) GetClientByID(clientID string) (model.Client, error) {
	m.GetClientByIDCalls = append(m.GetClientByIDCalls, clientID)

	if m.MockGetClientByID != nil {
		return m.MockGetClientByID(clientID)
	}
	return model.Client{}, nil
}
