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

package issuer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	authzconstants "github.com/emberauth/ember/internal/authzcode/constants"
	authzmodel "github.com/emberauth/ember/internal/authzcode/model"
	clientconstants "github.com/emberauth/ember/internal/client/constants"
	clientmodel "github.com/emberauth/ember/internal/client/model"
	"github.com/emberauth/ember/internal/issuer/constants"
	"github.com/emberauth/ember/internal/system/error/serviceerror"
	tokenconstants "github.com/emberauth/ember/internal/token/constants"
	tokenmodel "github.com/emberauth/ember/internal/token/model"
	"github.com/emberauth/ember/tests/mocks/storemock"
)

type CredentialIssuerTestSuite struct {
	suite.Suite
	mockClientService *storemock.MockClientService
	mockAuthzStore    *storemock.MockAuthorizationCodeStore
	mockTokenStore    *storemock.MockTokenStore
	issuer            *CredentialIssuer
	testClient        *clientmodel.ClientView
	testAuthzCode     authzmodel.AuthorizationCode
}

func TestCredentialIssuerTestSuite(t *testing.T) {
	suite.Run(t, new(CredentialIssuerTestSuite))
}

func (suite *CredentialIssuerTestSuite) SetupTest() {
	suite.testClient = &clientmodel.ClientView{
		ID:           "c1",
		Grants:       []string{"authorization_code", "refresh_token"},
		RedirectURIs: []string{"https://client.example.com/cb"},
	}

	suite.mockClientService = &storemock.MockClientService{
		MockResolveClient: func(clientID, clientSecret string) (
			*clientmodel.ClientView, *serviceerror.ServiceError) {
			return suite.testClient, nil
		},
	}

	suite.mockAuthzStore = &storemock.MockAuthorizationCodeStore{}
	suite.mockTokenStore = &storemock.MockTokenStore{}

	suite.testAuthzCode = authzmodel.AuthorizationCode{
		Code:        "abc123",
		ExpiresAt:   time.Now().Add(10 * time.Minute),
		RedirectURI: "https://client.example.com/cb",
		Scope:       "read",
		ClientID:    "c1",
		UserID:      "u1",
	}
	suite.mockAuthzStore.MockGetAuthorizationCode = func(code string) (
		authzmodel.AuthorizationCode, error) {
		if code == suite.testAuthzCode.Code {
			return suite.testAuthzCode, nil
		}
		return authzmodel.AuthorizationCode{}, authzconstants.ErrAuthorizationCodeNotFound
	}

	suite.issuer = &CredentialIssuer{
		ClientService: suite.mockClientService,
		AuthzStore:    suite.mockAuthzStore,
		TokenStore:    suite.mockTokenStore,
		Events:        NewLogEventSink(),
		Policy:        DefaultPolicy(),
	}
}

func (suite *CredentialIssuerTestSuite) TestNewCredentialIssuer() {
	issuer := NewCredentialIssuer(suite.mockClientService, suite.mockAuthzStore,
		suite.mockTokenStore, nil, DefaultPolicy())
	assert.NotNil(suite.T(), issuer)
	assert.Implements(suite.T(), (*CredentialIssuerInterface)(nil), issuer)
}

func (suite *CredentialIssuerTestSuite) TestAuthorize_Success() {
	before := time.Now()
	response, svcErr := suite.issuer.Authorize("c1", "s3cret", "u1",
		"https://client.example.com/cb", "read")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AuthorizationCode)
	assert.Equal(suite.T(), "https://client.example.com/cb", response.RedirectURI)
	assert.Equal(suite.T(), "read", response.Scope)
	assert.Equal(suite.T(), "c1", response.ClientID)
	assert.Equal(suite.T(), "u1", response.UserID)

	expectedExpiry := before.Add(suite.issuer.Policy.AuthorizationCodeValidity)
	assert.WithinDuration(suite.T(), expectedExpiry, response.ExpiresAt, 5*time.Second)

	assert.Len(suite.T(), suite.mockAuthzStore.InsertAuthorizationCodeCalls, 1)
	inserted := suite.mockAuthzStore.InsertAuthorizationCodeCalls[0]
	assert.Equal(suite.T(), response.AuthorizationCode, inserted.Code)
}

func (suite *CredentialIssuerTestSuite) TestAuthorize_FreshCodePerCall() {
	first, svcErr := suite.issuer.Authorize("c1", "", "u1", "https://client.example.com/cb", "")
	assert.Nil(suite.T(), svcErr)
	second, svcErr := suite.issuer.Authorize("c1", "", "u1", "https://client.example.com/cb", "")
	assert.Nil(suite.T(), svcErr)
	assert.NotEqual(suite.T(), first.AuthorizationCode, second.AuthorizationCode)
}

func (suite *CredentialIssuerTestSuite) TestAuthorize_ClientNotFound() {
	suite.mockClientService.MockResolveClient = func(clientID, clientSecret string) (
		*clientmodel.ClientView, *serviceerror.ServiceError) {
		return nil, &clientconstants.ErrorClientNotFound
	}

	response, svcErr := suite.issuer.Authorize("missing", "s3cret", "u1",
		"https://client.example.com/cb", "read")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), clientconstants.ErrorClientNotFound.Code, svcErr.Code)
	assert.Empty(suite.T(), suite.mockAuthzStore.InsertAuthorizationCodeCalls)
}

func (suite *CredentialIssuerTestSuite) TestAuthorize_GrantNotAllowed() {
	suite.testClient.Grants = []string{"client_credentials"}

	response, svcErr := suite.issuer.Authorize("c1", "s3cret", "u1",
		"https://client.example.com/cb", "read")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), clientconstants.ErrorInvalidClient.Code, svcErr.Code)
}

func (suite *CredentialIssuerTestSuite) TestAuthorize_StoreError() {
	suite.mockAuthzStore.MockInsertAuthorizationCode = func(authzCode authzmodel.AuthorizationCode) error {
		return errors.New("insert error")
	}

	response, svcErr := suite.issuer.Authorize("c1", "s3cret", "u1",
		"https://client.example.com/cb", "read")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorStorageIntegrity.Code, svcErr.Code)
}

func (suite *CredentialIssuerTestSuite) TestExchange_SuccessWithRefreshToken() {
	response, svcErr := suite.issuer.Exchange("abc123")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.NotEqual(suite.T(), response.AccessToken, response.RefreshToken)
	assert.Equal(suite.T(), "read", response.Scope)
	assert.Equal(suite.T(), "c1", response.ClientID)
	assert.Equal(suite.T(), "u1", response.UserID)

	assert.Equal(suite.T(), []string{"abc123"}, suite.mockAuthzStore.ConsumeAuthorizationCodeCalls)
	assert.Len(suite.T(), suite.mockTokenStore.InsertTokenPairCalls, 1)
	assert.Empty(suite.T(), suite.mockTokenStore.InsertAccessTokenCalls)
}

func (suite *CredentialIssuerTestSuite) TestExchange_NoRefreshGrant() {
	suite.testClient.Grants = []string{"authorization_code"}

	response, svcErr := suite.issuer.Exchange("abc123")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.Empty(suite.T(), response.RefreshToken)
	assert.Nil(suite.T(), response.RefreshTokenExpiresAt)

	assert.Len(suite.T(), suite.mockTokenStore.InsertAccessTokenCalls, 1)
	assert.Empty(suite.T(), suite.mockTokenStore.InsertTokenPairCalls)
}

func (suite *CredentialIssuerTestSuite) TestExchange_CodeNotFound() {
	response, svcErr := suite.issuer.Exchange("missing")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorCodeNotFound.Code, svcErr.Code)
	assert.Empty(suite.T(), suite.mockAuthzStore.ConsumeAuthorizationCodeCalls)
}

func (suite *CredentialIssuerTestSuite) TestExchange_ExpiredCodeIsConsumed() {
	suite.testAuthzCode.ExpiresAt = time.Now().Add(-time.Minute)

	response, svcErr := suite.issuer.Exchange("abc123")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorCodeExpired.Code, svcErr.Code)
	assert.Equal(suite.T(), []string{"abc123"}, suite.mockAuthzStore.ConsumeAuthorizationCodeCalls)
	assert.Empty(suite.T(), suite.mockTokenStore.InsertTokenPairCalls)
}

func (suite *CredentialIssuerTestSuite) TestExchange_ExpiredCodeLeftInPlace() {
	suite.issuer.Policy.ConsumeExpiredCodes = false
	suite.testAuthzCode.ExpiresAt = time.Now().Add(-time.Minute)

	response, svcErr := suite.issuer.Exchange("abc123")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorCodeExpired.Code, svcErr.Code)
	assert.Empty(suite.T(), suite.mockAuthzStore.ConsumeAuthorizationCodeCalls)
}

func (suite *CredentialIssuerTestSuite) TestExchange_CodeAlreadyUsed() {
	suite.mockAuthzStore.MockConsumeAuthorizationCode = func(code string) (bool, error) {
		return false, nil
	}

	response, svcErr := suite.issuer.Exchange("abc123")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorCodeAlreadyUsed.Code, svcErr.Code)
	assert.Empty(suite.T(), suite.mockTokenStore.InsertTokenPairCalls)
	assert.Empty(suite.T(), suite.mockTokenStore.InsertAccessTokenCalls)
}

func (suite *CredentialIssuerTestSuite) TestExchange_StorageErrorOnConsume() {
	suite.mockAuthzStore.MockConsumeAuthorizationCode = func(code string) (bool, error) {
		return false, errors.New("delete error")
	}

	response, svcErr := suite.issuer.Exchange("abc123")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorStorageIntegrity.Code, svcErr.Code)
}

func (suite *CredentialIssuerTestSuite) TestExchange_TokenStoreError() {
	suite.mockTokenStore.MockInsertTokenPair = func(accessToken tokenmodel.AccessToken,
		refreshToken tokenmodel.RefreshToken) error {
		return errors.New("insert error")
	}

	response, svcErr := suite.issuer.Exchange("abc123")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorStorageIntegrity.Code, svcErr.Code)
}

func (suite *CredentialIssuerTestSuite) TestIssueCredentials_Success() {
	before := time.Now()
	response, svcErr := suite.issuer.IssueCredentials("c1", "u1", "read write")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.Equal(suite.T(), "read write", response.Scope)

	expectedExpiry := before.Add(suite.issuer.Policy.AccessTokenValidity)
	assert.WithinDuration(suite.T(), expectedExpiry, response.AccessTokenExpiresAt, 5*time.Second)
}

func (suite *CredentialIssuerTestSuite) TestIssueCredentials_NonExpiringRefreshToken() {
	response, svcErr := suite.issuer.IssueCredentials("c1", "u1", "read")
	assert.Nil(suite.T(), svcErr)
	assert.Nil(suite.T(), response.RefreshTokenExpiresAt)

	pair := suite.mockTokenStore.InsertTokenPairCalls[0]
	assert.Nil(suite.T(), pair.RefreshToken.ExpiresAt)
}

func (suite *CredentialIssuerTestSuite) TestIssueCredentials_BoundedRefreshToken() {
	suite.issuer.Policy.RefreshTokenValidity = 24 * time.Hour

	before := time.Now()
	response, svcErr := suite.issuer.IssueCredentials("c1", "u1", "read")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), response.RefreshTokenExpiresAt)
	assert.WithinDuration(suite.T(), before.Add(24*time.Hour), *response.RefreshTokenExpiresAt,
		5*time.Second)
}

func (suite *CredentialIssuerTestSuite) TestRefresh_StaticPolicyKeepsRefreshToken() {
	suite.mockTokenStore.MockGetRefreshToken = func(token string) (tokenmodel.RefreshToken, error) {
		return tokenmodel.RefreshToken{
			Token:    "rt-1",
			Scope:    "read",
			ClientID: "c1",
			UserID:   "u1",
		}, nil
	}

	response, svcErr := suite.issuer.Refresh("rt-1", "s3cret")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.Equal(suite.T(), "rt-1", response.RefreshToken)
	assert.Equal(suite.T(), "read", response.Scope)

	assert.Len(suite.T(), suite.mockTokenStore.InsertAccessTokenCalls, 1)
	assert.Empty(suite.T(), suite.mockTokenStore.InsertTokenPairCalls)
	assert.Empty(suite.T(), suite.mockTokenStore.RevokeRefreshTokenCalls)
}

func (suite *CredentialIssuerTestSuite) TestRefresh_RotatePolicyReplacesRefreshToken() {
	suite.issuer.Policy.RotateOnRefresh = true
	suite.mockTokenStore.MockGetRefreshToken = func(token string) (tokenmodel.RefreshToken, error) {
		return tokenmodel.RefreshToken{
			Token:    "rt-1",
			Scope:    "read",
			ClientID: "c1",
			UserID:   "u1",
		}, nil
	}

	response, svcErr := suite.issuer.Refresh("rt-1", "s3cret")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), response)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.NotEqual(suite.T(), "rt-1", response.RefreshToken)

	assert.Equal(suite.T(), []string{"rt-1"}, suite.mockTokenStore.RevokeRefreshTokenCalls)
	assert.Len(suite.T(), suite.mockTokenStore.InsertTokenPairCalls, 1)
	assert.Empty(suite.T(), suite.mockTokenStore.InsertAccessTokenCalls)
}

func (suite *CredentialIssuerTestSuite) TestRefresh_TokenNotFound() {
	suite.mockTokenStore.MockGetRefreshToken = func(token string) (tokenmodel.RefreshToken, error) {
		return tokenmodel.RefreshToken{}, tokenconstants.ErrRefreshTokenNotFound
	}

	response, svcErr := suite.issuer.Refresh("missing", "")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorRefreshTokenNotFound.Code, svcErr.Code)
}

func (suite *CredentialIssuerTestSuite) TestRefresh_TokenExpired() {
	expired := time.Now().Add(-time.Hour)
	suite.mockTokenStore.MockGetRefreshToken = func(token string) (tokenmodel.RefreshToken, error) {
		return tokenmodel.RefreshToken{
			Token:     "rt-1",
			ExpiresAt: &expired,
			ClientID:  "c1",
			UserID:    "u1",
		}, nil
	}

	response, svcErr := suite.issuer.Refresh("rt-1", "")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorRefreshTokenExpired.Code, svcErr.Code)
	assert.Empty(suite.T(), suite.mockClientService.ResolveClientCalls)
}

func (suite *CredentialIssuerTestSuite) TestRefresh_SecretMismatch() {
	suite.mockTokenStore.MockGetRefreshToken = func(token string) (tokenmodel.RefreshToken, error) {
		return tokenmodel.RefreshToken{Token: "rt-1", ClientID: "c1", UserID: "u1"}, nil
	}
	suite.mockClientService.MockResolveClient = func(clientID, clientSecret string) (
		*clientmodel.ClientView, *serviceerror.ServiceError) {
		return nil, &clientconstants.ErrorClientNotFound
	}

	response, svcErr := suite.issuer.Refresh("rt-1", "wrong")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), clientconstants.ErrorClientNotFound.Code, svcErr.Code)
}

func (suite *CredentialIssuerTestSuite) TestRefresh_GrantNotAllowed() {
	suite.testClient.Grants = []string{"authorization_code"}
	suite.mockTokenStore.MockGetRefreshToken = func(token string) (tokenmodel.RefreshToken, error) {
		return tokenmodel.RefreshToken{Token: "rt-1", ClientID: "c1", UserID: "u1"}, nil
	}

	response, svcErr := suite.issuer.Refresh("rt-1", "")
	assert.Nil(suite.T(), response)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), clientconstants.ErrorInvalidClient.Code, svcErr.Code)
}

func (suite *CredentialIssuerTestSuite) TestRevokeAuthorizationCode_Idempotent() {
	calls := 0
	suite.mockAuthzStore.MockConsumeAuthorizationCode = func(code string) (bool, error) {
		calls++
		return calls == 1, nil
	}

	removed, svcErr := suite.issuer.RevokeAuthorizationCode("abc123")
	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), removed)

	removed, svcErr = suite.issuer.RevokeAuthorizationCode("abc123")
	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), removed)
}

func (suite *CredentialIssuerTestSuite) TestRevokeRefreshToken_Idempotent() {
	calls := 0
	suite.mockTokenStore.MockRevokeRefreshToken = func(token string) (bool, error) {
		calls++
		return calls == 1, nil
	}

	removed, svcErr := suite.issuer.RevokeRefreshToken("rt-1")
	assert.Nil(suite.T(), svcErr)
	assert.True(suite.T(), removed)

	removed, svcErr = suite.issuer.RevokeRefreshToken("rt-1")
	assert.Nil(suite.T(), svcErr)
	assert.False(suite.T(), removed)
}

func (suite *CredentialIssuerTestSuite) TestRevokeRefreshToken_StorageError() {
	suite.mockTokenStore.MockRevokeRefreshToken = func(token string) (bool, error) {
		return false, errors.New("delete error")
	}

	removed, svcErr := suite.issuer.RevokeRefreshToken("rt-1")
	assert.False(suite.T(), removed)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorStorageIntegrity.Code, svcErr.Code)
}

func (suite *CredentialIssuerTestSuite) TestIntrospectAccessToken_Success() {
	expiry := time.Now().Add(time.Hour)
	suite.mockTokenStore.MockGetAccessToken = func(token string) (tokenmodel.AccessToken, error) {
		return tokenmodel.AccessToken{
			Token:     "at-1",
			ExpiresAt: expiry,
			Scope:     "read",
			ClientID:  "c1",
			UserID:    "u1",
		}, nil
	}

	view, svcErr := suite.issuer.IntrospectAccessToken("at-1")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), view)
	assert.Equal(suite.T(), "at-1", view.AccessToken)
	assert.Equal(suite.T(), expiry, view.AccessTokenExpiresAt)
	assert.Equal(suite.T(), "c1", view.ClientID)
	assert.Equal(suite.T(), "u1", view.UserID)
}

func (suite *CredentialIssuerTestSuite) TestIntrospectAccessToken_ExpiredRecordStillReturned() {
	expiry := time.Now().Add(-time.Hour)
	suite.mockTokenStore.MockGetAccessToken = func(token string) (tokenmodel.AccessToken, error) {
		return tokenmodel.AccessToken{Token: "at-1", ExpiresAt: expiry}, nil
	}

	view, svcErr := suite.issuer.IntrospectAccessToken("at-1")
	assert.Nil(suite.T(), svcErr)
	assert.NotNil(suite.T(), view)
	assert.True(suite.T(), view.AccessTokenExpiresAt.Before(time.Now()))
}

func (suite *CredentialIssuerTestSuite) TestIntrospectAccessToken_NotFound() {
	suite.mockTokenStore.MockGetAccessToken = func(token string) (tokenmodel.AccessToken, error) {
		return tokenmodel.AccessToken{}, tokenconstants.ErrAccessTokenNotFound
	}

	view, svcErr := suite.issuer.IntrospectAccessToken("missing")
	assert.Nil(suite.T(), view)
	assert.NotNil(suite.T(), svcErr)
	assert.Equal(suite.T(), constants.ErrorAccessTokenNotFound.Code, svcErr.Code)
}
