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

// Package issuer implements the credential issuer orchestrating the
// authorization-code grant lifecycle over the client registry, the
// authorization code store, and the token store.
package issuer

import (
	"errors"
	"time"

	authzconstants "github.com/emberauth/ember/internal/authzcode/constants"
	authzmodel "github.com/emberauth/ember/internal/authzcode/model"
	authzstore "github.com/emberauth/ember/internal/authzcode/store"
	clientconstants "github.com/emberauth/ember/internal/client/constants"
	clientservice "github.com/emberauth/ember/internal/client/service"
	"github.com/emberauth/ember/internal/issuer/constants"
	"github.com/emberauth/ember/internal/issuer/model"
	"github.com/emberauth/ember/internal/system/config"
	"github.com/emberauth/ember/internal/system/error/serviceerror"
	"github.com/emberauth/ember/internal/system/utils"
	tokenconstants "github.com/emberauth/ember/internal/token/constants"
	tokenmodel "github.com/emberauth/ember/internal/token/model"
	tokenstore "github.com/emberauth/ember/internal/token/store"
)

// Policy holds the issuance policy knobs of the credential issuer.
type Policy struct {
	// AuthorizationCodeValidity bounds the lifetime of issued codes.
	AuthorizationCodeValidity time.Duration
	// AccessTokenValidity bounds the lifetime of issued access tokens.
	AccessTokenValidity time.Duration
	// RefreshTokenValidity bounds the lifetime of issued refresh tokens.
	// Zero means issued refresh tokens never expire.
	RefreshTokenValidity time.Duration
	// RotateOnRefresh revokes and replaces the refresh token on each refresh.
	// When false the refresh token is static and survives refreshes.
	RotateOnRefresh bool
	// ConsumeExpiredCodes deletes expired codes at exchange time so repeated
	// exchange attempts with a dead code cannot hammer the store.
	ConsumeExpiredCodes bool
}

// DefaultPolicy returns the default issuance policy.
func DefaultPolicy() Policy {
	return Policy{
		AuthorizationCodeValidity: constants.DefaultAuthorizationCodeValidity * time.Second,
		AccessTokenValidity:       constants.DefaultAccessTokenValidity * time.Second,
		RefreshTokenValidity:      constants.DefaultRefreshTokenValidity * time.Second,
		RotateOnRefresh:           false,
		ConsumeExpiredCodes:       true,
	}
}

// PolicyFromConfig builds the issuance policy from the OAuth configuration.
func PolicyFromConfig(cfg config.OAuthConfig) Policy {
	policy := DefaultPolicy()
	if cfg.AuthorizationCode.ValidityPeriod > 0 {
		policy.AuthorizationCodeValidity = time.Duration(cfg.AuthorizationCode.ValidityPeriod) * time.Second
	}
	if cfg.AccessToken.ValidityPeriod > 0 {
		policy.AccessTokenValidity = time.Duration(cfg.AccessToken.ValidityPeriod) * time.Second
	}
	if cfg.RefreshToken.ValidityPeriod > 0 {
		policy.RefreshTokenValidity = time.Duration(cfg.RefreshToken.ValidityPeriod) * time.Second
	}
	policy.RotateOnRefresh = cfg.RefreshToken.RotateOnRefresh
	if cfg.ConsumeExpiredCodes != nil {
		policy.ConsumeExpiredCodes = *cfg.ConsumeExpiredCodes
	}
	return policy
}

// CredentialIssuerInterface defines the operations exposed to the grant-flow engine.
type CredentialIssuerInterface interface {
	// Authorize validates the client and issues a single-use authorization code.
	Authorize(clientID, clientSecret, userID, redirectURI, scope string) (
		*model.AuthorizationCodeResponse, *serviceerror.ServiceError)
	// Exchange consumes an authorization code and issues credentials for it.
	Exchange(codeValue string) (*model.TokenResponse, *serviceerror.ServiceError)
	// IssueCredentials issues an access token, plus a refresh token when the
	// client's grants include refresh_token.
	IssueCredentials(clientID, userID, scope string) (*model.TokenResponse, *serviceerror.ServiceError)
	// Refresh mints a new access token for a refresh token. clientSecret, when
	// supplied, must match the stored client's secret.
	Refresh(refreshTokenValue, clientSecret string) (*model.TokenResponse, *serviceerror.ServiceError)
	// RevokeAuthorizationCode deletes an authorization code. Idempotent; a
	// second call reports false, never an error.
	RevokeAuthorizationCode(codeValue string) (bool, *serviceerror.ServiceError)
	// RevokeRefreshToken deletes a refresh token. Access tokens issued under it
	// remain valid until their own expiry; revocation does not cascade.
	RevokeRefreshToken(refreshTokenValue string) (bool, *serviceerror.ServiceError)
	// IntrospectAccessToken returns stored access token metadata. Callers
	// compare the expiry against current time to decide validity.
	IntrospectAccessToken(tokenValue string) (*model.AccessTokenView, *serviceerror.ServiceError)
}

// CredentialIssuer implements the CredentialIssuerInterface.
type CredentialIssuer struct {
	ClientService clientservice.ClientServiceInterface
	AuthzStore    authzstore.AuthorizationCodeStoreInterface
	TokenStore    tokenstore.TokenStoreInterface
	Events        EventSink
	Policy        Policy
}

// NewCredentialIssuer creates a new CredentialIssuer with the given collaborators.
// A nil events sink defaults to the logging sink.
func NewCredentialIssuer(clientService clientservice.ClientServiceInterface,
	authzStore authzstore.AuthorizationCodeStoreInterface,
	tokenStore tokenstore.TokenStoreInterface, events EventSink,
	policy Policy) CredentialIssuerInterface {
	if events == nil {
		events = NewLogEventSink()
	}
	return &CredentialIssuer{
		ClientService: clientService,
		AuthzStore:    authzStore,
		TokenStore:    tokenStore,
		Events:        events,
		Policy:        policy,
	}
}

// Authorize validates the client and issues a single-use authorization code.
func (ci *CredentialIssuer) Authorize(clientID, clientSecret, userID, redirectURI,
	scope string) (*model.AuthorizationCodeResponse, *serviceerror.ServiceError) {
	ci.Events.OperationStarted(OpAuthorize)

	client, svcErr := ci.ClientService.ResolveClient(clientID, clientSecret)
	if svcErr != nil {
		return nil, ci.fail(OpAuthorize, svcErr)
	}
	if !client.HasGrant(constants.GrantTypeAuthorizationCode) {
		return nil, ci.fail(OpAuthorize, &clientconstants.ErrorInvalidClient)
	}

	authzCode := authzmodel.AuthorizationCode{
		Code:        utils.GenerateUUID(),
		ExpiresAt:   time.Now().Add(ci.Policy.AuthorizationCodeValidity),
		RedirectURI: redirectURI,
		Scope:       scope,
		ClientID:    client.ID,
		UserID:      userID,
	}
	if err := ci.AuthzStore.InsertAuthorizationCode(authzCode); err != nil {
		return nil, ci.failStorage(OpAuthorize, err)
	}

	ci.Events.OperationSucceeded(OpAuthorize)
	return model.NewAuthorizationCodeResponse(authzCode), nil
}

// Exchange consumes an authorization code and issues credentials for it.
// The code is deleted on every outcome except a plain miss, so a code can be
// exchanged at most once.
func (ci *CredentialIssuer) Exchange(codeValue string) (
	*model.TokenResponse, *serviceerror.ServiceError) {
	ci.Events.OperationStarted(OpExchange)

	authzCode, err := ci.AuthzStore.GetAuthorizationCode(codeValue)
	if err != nil {
		if errors.Is(err, authzconstants.ErrAuthorizationCodeNotFound) {
			return nil, ci.fail(OpExchange, &constants.ErrorCodeNotFound)
		}
		return nil, ci.failStorage(OpExchange, err)
	}

	if authzCode.IsExpired(time.Now()) {
		if ci.Policy.ConsumeExpiredCodes {
			if _, consumeErr := ci.AuthzStore.ConsumeAuthorizationCode(codeValue); consumeErr != nil {
				return nil, ci.failStorage(OpExchange, consumeErr)
			}
		}
		return nil, ci.fail(OpExchange, &constants.ErrorCodeExpired)
	}

	consumed, err := ci.AuthzStore.ConsumeAuthorizationCode(codeValue)
	if err != nil {
		return nil, ci.failStorage(OpExchange, err)
	}
	if !consumed {
		// Lost the race to a concurrent exchange of the same code.
		return nil, ci.fail(OpExchange, &constants.ErrorCodeAlreadyUsed)
	}

	response, svcErr := ci.issueCredentials(authzCode.ClientID, authzCode.UserID, authzCode.Scope)
	if svcErr != nil {
		return nil, ci.fail(OpExchange, svcErr)
	}

	ci.Events.OperationSucceeded(OpExchange)
	return response, nil
}

// IssueCredentials issues an access token, plus a refresh token when the
// client's grants include refresh_token.
func (ci *CredentialIssuer) IssueCredentials(clientID, userID, scope string) (
	*model.TokenResponse, *serviceerror.ServiceError) {
	ci.Events.OperationStarted(OpIssueCredentials)

	response, svcErr := ci.issueCredentials(clientID, userID, scope)
	if svcErr != nil {
		return nil, ci.fail(OpIssueCredentials, svcErr)
	}

	ci.Events.OperationSucceeded(OpIssueCredentials)
	return response, nil
}

// Refresh mints a new access token for a refresh token. Under the static
// policy the stored refresh token is left untouched and returned as is; under
// rotation it is revoked and replaced.
func (ci *CredentialIssuer) Refresh(refreshTokenValue, clientSecret string) (
	*model.TokenResponse, *serviceerror.ServiceError) {
	ci.Events.OperationStarted(OpRefresh)

	refreshToken, err := ci.TokenStore.GetRefreshToken(refreshTokenValue)
	if err != nil {
		if errors.Is(err, tokenconstants.ErrRefreshTokenNotFound) {
			return nil, ci.fail(OpRefresh, &constants.ErrorRefreshTokenNotFound)
		}
		return nil, ci.failStorage(OpRefresh, err)
	}

	if refreshToken.IsExpired(time.Now()) {
		return nil, ci.fail(OpRefresh, &constants.ErrorRefreshTokenExpired)
	}

	client, svcErr := ci.ClientService.ResolveClient(refreshToken.ClientID, clientSecret)
	if svcErr != nil {
		return nil, ci.fail(OpRefresh, svcErr)
	}
	if !client.HasGrant(constants.GrantTypeRefreshToken) {
		return nil, ci.fail(OpRefresh, &clientconstants.ErrorInvalidClient)
	}

	accessToken := ci.newAccessToken(refreshToken.ClientID, refreshToken.UserID, refreshToken.Scope)

	if !ci.Policy.RotateOnRefresh {
		if err := ci.TokenStore.InsertAccessToken(accessToken); err != nil {
			return nil, ci.failStorage(OpRefresh, err)
		}
		ci.Events.OperationSucceeded(OpRefresh)
		return model.NewTokenResponse(accessToken, &refreshToken), nil
	}

	if _, err := ci.TokenStore.RevokeRefreshToken(refreshTokenValue); err != nil {
		return nil, ci.failStorage(OpRefresh, err)
	}
	newRefreshToken := ci.newRefreshToken(refreshToken.ClientID, refreshToken.UserID, refreshToken.Scope)
	if err := ci.TokenStore.InsertTokenPair(accessToken, newRefreshToken); err != nil {
		return nil, ci.failStorage(OpRefresh, err)
	}

	ci.Events.OperationSucceeded(OpRefresh)
	return model.NewTokenResponse(accessToken, &newRefreshToken), nil
}

// RevokeAuthorizationCode deletes an authorization code.
func (ci *CredentialIssuer) RevokeAuthorizationCode(codeValue string) (
	bool, *serviceerror.ServiceError) {
	ci.Events.OperationStarted(OpRevokeAuthorizationCode)

	removed, err := ci.AuthzStore.ConsumeAuthorizationCode(codeValue)
	if err != nil {
		return false, ci.failStorage(OpRevokeAuthorizationCode, err)
	}

	ci.Events.OperationSucceeded(OpRevokeAuthorizationCode)
	return removed, nil
}

// RevokeRefreshToken deletes a refresh token. Revocation does not cascade to
// access tokens issued under it; they remain valid until their own expiry.
func (ci *CredentialIssuer) RevokeRefreshToken(refreshTokenValue string) (
	bool, *serviceerror.ServiceError) {
	ci.Events.OperationStarted(OpRevokeRefreshToken)

	removed, err := ci.TokenStore.RevokeRefreshToken(refreshTokenValue)
	if err != nil {
		return false, ci.failStorage(OpRevokeRefreshToken, err)
	}

	ci.Events.OperationSucceeded(OpRevokeRefreshToken)
	return removed, nil
}

// IntrospectAccessToken returns stored access token metadata.
func (ci *CredentialIssuer) IntrospectAccessToken(tokenValue string) (
	*model.AccessTokenView, *serviceerror.ServiceError) {
	ci.Events.OperationStarted(OpIntrospectAccessToken)

	accessToken, err := ci.TokenStore.GetAccessToken(tokenValue)
	if err != nil {
		if errors.Is(err, tokenconstants.ErrAccessTokenNotFound) {
			return nil, ci.fail(OpIntrospectAccessToken, &constants.ErrorAccessTokenNotFound)
		}
		return nil, ci.failStorage(OpIntrospectAccessToken, err)
	}

	ci.Events.OperationSucceeded(OpIntrospectAccessToken)
	return model.NewAccessTokenView(accessToken), nil
}

// issueCredentials resolves the client and persists the issued tokens. Both
// tokens are written in one transaction when a refresh token is due.
func (ci *CredentialIssuer) issueCredentials(clientID, userID, scope string) (
	*model.TokenResponse, *serviceerror.ServiceError) {
	client, svcErr := ci.ClientService.ResolveClient(clientID, "")
	if svcErr != nil {
		return nil, svcErr
	}

	accessToken := ci.newAccessToken(clientID, userID, scope)

	if !client.HasGrant(constants.GrantTypeRefreshToken) {
		if err := ci.TokenStore.InsertAccessToken(accessToken); err != nil {
			return nil, storageError(err)
		}
		return model.NewTokenResponse(accessToken, nil), nil
	}

	refreshToken := ci.newRefreshToken(clientID, userID, scope)
	if err := ci.TokenStore.InsertTokenPair(accessToken, refreshToken); err != nil {
		return nil, storageError(err)
	}
	return model.NewTokenResponse(accessToken, &refreshToken), nil
}

// newAccessToken builds an access token record per the issuance policy.
func (ci *CredentialIssuer) newAccessToken(clientID, userID, scope string) tokenmodel.AccessToken {
	return tokenmodel.AccessToken{
		Token:     utils.GenerateUUID(),
		ExpiresAt: time.Now().Add(ci.Policy.AccessTokenValidity),
		Scope:     scope,
		ClientID:  clientID,
		UserID:    userID,
	}
}

// newRefreshToken builds a refresh token record per the issuance policy.
// A zero refresh validity yields a non-expiring token.
func (ci *CredentialIssuer) newRefreshToken(clientID, userID, scope string) tokenmodel.RefreshToken {
	refreshToken := tokenmodel.RefreshToken{
		Token:    utils.GenerateUUID(),
		Scope:    scope,
		ClientID: clientID,
		UserID:   userID,
	}
	if ci.Policy.RefreshTokenValidity > 0 {
		expiresAt := time.Now().Add(ci.Policy.RefreshTokenValidity)
		refreshToken.ExpiresAt = &expiresAt
	}
	return refreshToken
}

// fail reports an operation failure to the event sink and passes the error through.
func (ci *CredentialIssuer) fail(op Operation,
	svcErr *serviceerror.ServiceError) *serviceerror.ServiceError {
	ci.Events.OperationFailed(op, svcErr.Code)
	return svcErr
}

// failStorage reports a storage failure to the event sink and maps it to the
// storage integrity error.
func (ci *CredentialIssuer) failStorage(op Operation, err error) *serviceerror.ServiceError {
	svcErr := storageError(err)
	ci.Events.OperationFailed(op, svcErr.Code)
	return svcErr
}

// storageError wraps a store failure in the storage integrity service error.
func storageError(err error) *serviceerror.ServiceError {
	return serviceerror.CustomServiceError(constants.ErrorStorageIntegrity, err.Error())
}
