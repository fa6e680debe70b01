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

// Package model defines the external views returned by the credential issuer
// and the mapping from storage records to the grant-flow engine vocabulary.
// Storage records carry snake_case column naming; the views carry the engine's
// camelCase field names. The seam is deliberate and kept in one place.
package model

import (
	"time"

	authzmodel "github.com/emberauth/ember/internal/authzcode/model"
	tokenmodel "github.com/emberauth/ember/internal/token/model"
)

// AuthorizationCodeResponse is the external view of an issued authorization code.
type AuthorizationCodeResponse struct {
	AuthorizationCode string    `json:"authorizationCode"`
	ExpiresAt         time.Time `json:"expiresAt"`
	RedirectURI       string    `json:"redirectUri"`
	Scope             string    `json:"scope"`
	ClientID          string    `json:"clientId"`
	UserID            string    `json:"userId"`
}

// TokenResponse is the external view of issued credentials. RefreshToken is
// empty when the client's grants exclude refresh_token.
type TokenResponse struct {
	AccessToken           string     `json:"accessToken"`
	AccessTokenExpiresAt  time.Time  `json:"accessTokenExpiresAt"`
	RefreshToken          string     `json:"refreshToken,omitempty"`
	RefreshTokenExpiresAt *time.Time `json:"refreshTokenExpiresAt,omitempty"`
	Scope                 string     `json:"scope"`
	ClientID              string     `json:"clientId"`
	UserID                string     `json:"userId"`
}

// AccessTokenView is the external view of a stored access token returned by
// introspection. Callers compare AccessTokenExpiresAt against current time to
// decide validity.
type AccessTokenView struct {
	AccessToken          string    `json:"accessToken"`
	AccessTokenExpiresAt time.Time `json:"accessTokenExpiresAt"`
	Scope                string    `json:"scope"`
	ClientID             string    `json:"clientId"`
	UserID               string    `json:"userId"`
}

// NewAuthorizationCodeResponse maps a stored authorization code record to its external view.
func NewAuthorizationCodeResponse(record authzmodel.AuthorizationCode) *AuthorizationCodeResponse {
	return &AuthorizationCodeResponse{
		AuthorizationCode: record.Code,
		ExpiresAt:         record.ExpiresAt,
		RedirectURI:       record.RedirectURI,
		Scope:             record.Scope,
		ClientID:          record.ClientID,
		UserID:            record.UserID,
	}
}

// NewTokenResponse maps stored token records to the external view.
// refreshToken may be nil when no refresh token was issued.
func NewTokenResponse(accessToken tokenmodel.AccessToken,
	refreshToken *tokenmodel.RefreshToken) *TokenResponse {
	response := &TokenResponse{
		AccessToken:          accessToken.Token,
		AccessTokenExpiresAt: accessToken.ExpiresAt,
		Scope:                accessToken.Scope,
		ClientID:             accessToken.ClientID,
		UserID:               accessToken.UserID,
	}
	if refreshToken != nil {
		response.RefreshToken = refreshToken.Token
		response.RefreshTokenExpiresAt = refreshToken.ExpiresAt
	}
	return response
}

// NewAccessTokenView maps a stored access token record to its external view.
func NewAccessTokenView(record tokenmodel.AccessToken) *AccessTokenView {
	return &AccessTokenView{
		AccessToken:          record.Token,
		AccessTokenExpiresAt: record.ExpiresAt,
		Scope:                record.Scope,
		ClientID:             record.ClientID,
		UserID:               record.UserID,
	}
}
