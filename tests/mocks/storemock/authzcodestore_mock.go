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
	"github.com/emberauth/ember/internal/authzcode/model"
)

// MockAuthorizationCodeStore is a mock implementation of the AuthorizationCodeStoreInterface.
type MockAuthorizationCodeStore struct {
	// MockInsertAuthorizationCode defines the behavior for the InsertAuthorizationCode method.
	MockInsertAuthorizationCode func(authzCode model.AuthorizationCode) error

	// MockGetAuthorizationCode defines the behavior for the GetAuthorizationCode method.
	MockGetAuthorizationCode func(code string) (model.AuthorizationCode, error)

	// MockConsumeAuthorizationCode defines the behavior for the ConsumeAuthorizationCode method.
	MockConsumeAuthorizationCode func(code string) (bool, error)

	// InsertAuthorizationCodeCalls tracks the arguments passed to InsertAuthorizationCode.
	InsertAuthorizationCodeCalls []model.AuthorizationCode

	// GetAuthorizationCodeCalls tracks the arguments passed to GetAuthorizationCode.
	GetAuthorizationCodeCalls []string

	// ConsumeAuthorizationCodeCalls tracks the arguments passed to ConsumeAuthorizationCode.
	ConsumeAuthorizationCodeCalls []string
}

// InsertAuthorizationCode mocks the InsertAuthorizationCode method of the store.
func (m *MockAuthorizationCodeStore) InsertAuthorizationCode(authzCode model.AuthorizationCode) error {
	m.InsertAuthorizationCodeCalls = append(m.InsertAuthorizationCodeCalls, authzCode)

	if m.MockInsertAuthorizationCode != nil {
		return m.MockInsertAuthorizationCode(authzCode)
	}
	return nil
}

// GetAuthorizationCode mocks the GetAuthorizationCode method of the store.
func (m *MockAuthorizationCodeStore) GetAuthorizationCode(code string) (model.AuthorizationCode, error) {
	m.GetAuthorizationCodeCalls = append(m.GetAuthorizationCodeCalls, code)

	if m.MockGetAuthorizationCode != nil {
		return m.MockGetAuthorizationCode(code)
	}
	return model.AuthorizationCode{}, nil
}

// ConsumeAuthorizationCode mocks the ConsumeAuthorizationCode method of the store.
func (m *MockAuthorizationCodeStore) ConsumeAuthorizationCode(code string) (bool, error) {
	m.ConsumeAuthorizationCodeCalls = append(m.ConsumeAuthorizationCodeCalls, code)

	if m.MockConsumeAuthorizationCode != nil {
		return m.MockConsumeAuthorizationCode(code)
	}
	return true, nil
}
