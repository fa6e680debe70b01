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
	"github.com/emberauth/ember/internal/token/model"
)

// MockTokenStore is a mock implementation of the TokenStoreInterface.
type MockTokenStore struct {
	// MockInsertAccessToken defines the behavior for the InsertAccessToken method.
	MockInsertAccessToken func(accessToken model.AccessToken) error

	// MockInsertTokenPair defines the behavior for the InsertTokenPair method.
	MockInsertTokenPair func(accessToken model.AccessToken, refreshToken model.RefreshToken) error

	// MockGetAccessToken defines the behavior for the GetAccessToken method.
	MockGetAccessToken func(token string) (model.AccessToken, error)

	// MockGetRefreshToken defines the behavior for the GetRefreshToken method.
	MockGetRefreshToken func(token string) (model.RefreshToken, error)

	// MockRevokeAccessToken defines the behavior for the RevokeAccessToken method.
	MockRevokeAccessToken func(token string) (bool, error)

	// MockRevokeRefreshToken defines the behavior for the RevokeRefreshToken method.
	MockRevokeRefreshToken func(token string) (bool, error)

	// InsertAccessTokenCalls tracks the arguments passed to InsertAccessToken.
	InsertAccessTokenCalls []model.AccessToken

	// InsertTokenPairCalls tracks the arguments passed to InsertTokenPair.
	InsertTokenPairCalls []struct {
		AccessToken  model.AccessToken
		RefreshToken model.RefreshToken
	}

	// GetAccessTokenCalls tracks the arguments passed to GetAccessToken.
	GetAccessTokenCalls []string

	// GetRefreshTokenCalls tracks the arguments passed to GetRefreshToken.
	GetRefreshTokenCalls []string

	// RevokeAccessTokenCalls tracks the arguments passed to RevokeAccessToken.
	RevokeAccessTokenCalls []string

	// RevokeRefreshTokenCalls tracks the arguments passed to RevokeRefreshToken.
	RevokeRefreshTokenCalls []string
}

// InsertAccessToken mocks the InsertAccessToken method of the store.
func (m *MockTokenStore) InsertAccessToken(accessToken model.AccessToken) error {
	m.InsertAccessTokenCalls = append(m.InsertAccessTokenCalls, accessToken)

	if m.MockInsertAccessToken != nil {
		return m.MockInsertAccessToken(accessToken)
	}
	return nil
}

// InsertTokenPair mocks the InsertTokenPair method of the store.
func (m *MockTokenStore) InsertTokenPair(accessToken model.AccessToken,
	refreshToken model.RefreshToken) error {
	m.InsertTokenPairCalls = append(m.InsertTokenPairCalls, struct {
		AccessToken  model.AccessToken
		RefreshToken model.RefreshToken
	}{accessToken, refreshToken})

	if m.MockInsertTokenPair != nil {
		return m.MockInsertTokenPair(accessToken, refreshToken)
	}
	return nil
}

// GetAccessToken mocks the GetAccessToken method of the store.
func (m *MockTokenStore) GetAccessToken(token string) (model.AccessToken, error) {
	m.GetAccessTokenCalls = append(m.GetAccessTokenCalls, token)

	if m.MockGetAccessToken != nil {
		return m.MockGetAccessToken(token)
	}
	return model.AccessToken{}, nil
}

// GetRefreshToken mocks the GetRefreshToken method of the store.
func (m *MockTokenStore) GetRefreshToken(token string) (model.RefreshToken, error) {
	m.GetRefreshTokenCalls = append(m.GetRefreshTokenCalls, token)

	if m.MockGetRefreshToken != nil {
		return m.MockGetRefreshToken(token)
	}
	return model.RefreshToken{}, nil
}

// RevokeAccessToken mocks the RevokeAccessToken method of the store.
func (m *MockTokenStore) RevokeAccessToken(token string) (bool, error) {
	m.RevokeAccessTokenCalls = append(m.RevokeAccessTokenCalls, token)

	if m.MockRevokeAccessToken != nil {
		return m.MockRevokeAccessToken(token)
	}
	return true, nil
}

// RevokeRefreshToken mocks the RevokeRefreshToken method of the store.
func (m *MockTokenStore) RevokeRefreshToken(token string) (bool, error) {
	m.RevokeRefreshTokenCalls = append(m.RevokeRefreshTokenCalls, token)

	if m.MockRevokeRefreshToken != nil {
		return m.MockRevokeRefreshToken(token)
	}
	return true, nil
}
