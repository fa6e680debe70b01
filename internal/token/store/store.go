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

// Package store provides functionality for handling access and refresh token persistence.
package store

import (
	"errors"
	"fmt"

	dbmodel "github.com/emberauth/ember/internal/system/database/model"
	"github.com/emberauth/ember/internal/system/database/provider"
	dbutils "github.com/emberauth/ember/internal/system/database/utils"
	"github.com/emberauth/ember/internal/system/log"
	"github.com/emberauth/ember/internal/token/constants"
	"github.com/emberauth/ember/internal/token/model"
)

const loggerComponentName = "TokenStore"

// TokenStoreInterface defines the interface for managing access and refresh tokens.
type TokenStoreInterface interface {
	InsertAccessToken(accessToken model.AccessToken) error
	// InsertTokenPair writes an access token and a refresh token in a single
	// transaction so a partial write cannot leave an orphaned access token.
	InsertTokenPair(accessToken model.AccessToken, refreshToken model.RefreshToken) error
	GetAccessToken(tokenValue string) (model.AccessToken, error)
	GetRefreshToken(tokenValue string) (model.RefreshToken, error)
	// RevokeAccessToken deletes an access token and reports whether a record was removed.
	RevokeAccessToken(tokenValue string) (bool, error)
	// RevokeRefreshToken deletes a refresh token and reports whether a record was removed.
	RevokeRefreshToken(tokenValue string) (bool, error)
}

// TokenStore implements the TokenStoreInterface over the runtime database.
type TokenStore struct {
	DBProvider provider.DBProviderInterface
}

// NewTokenStore creates a new instance of TokenStore.
func NewTokenStore() TokenStoreInterface {
	return &TokenStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// InsertAccessToken inserts a new access token into the database.
func (ts *TokenStore) InsertAccessToken(accessToken model.AccessToken) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	_, err = dbClient.Execute(constants.QueryInsertAccessToken, accessToken.Token,
		accessToken.ExpiresAt, accessToken.Scope, accessToken.ClientID, accessToken.UserID)
	if err != nil {
		logger.Error("Failed to insert access token", log.Error(err))
		return fmt.Errorf("failed to insert access token: %w", err)
	}

	return nil
}

// InsertTokenPair inserts an access token and a refresh token in one transaction.
func (ts *TokenStore) InsertTokenPair(accessToken model.AccessToken,
	refreshToken model.RefreshToken) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	tx, err := dbClient.BeginTx()
	if err != nil {
		logger.Error("Failed to begin transaction", log.Error(err))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	var refreshExpiresAt interface{}
	if refreshToken.ExpiresAt != nil {
		refreshExpiresAt = *refreshToken.ExpiresAt
	}

	_, err = tx.Exec(constants.QueryInsertAccessToken.Query, accessToken.Token,
		accessToken.ExpiresAt, accessToken.Scope, accessToken.ClientID, accessToken.UserID)
	if err == nil {
		_, err = tx.Exec(constants.QueryInsertRefreshToken.Query, refreshToken.Token,
			refreshExpiresAt, refreshToken.Scope, refreshToken.ClientID, refreshToken.UserID)
	}
	if err != nil {
		logger.Error("Failed to insert token pair", log.Error(err))
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to insert token pair: %w", err)
	}

	if err := tx.Commit(); err != nil {
		logger.Error("Failed to commit transaction", log.Error(err))
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAccessToken retrieves an access token record by its value.
func (ts *TokenStore) GetAccessToken(tokenValue string) (model.AccessToken, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.AccessToken{}, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(constants.QueryGetAccessToken, tokenValue)
	if err != nil {
		return model.AccessToken{}, fmt.Errorf("error while retrieving access token: %w", err)
	}
	if len(results) == 0 {
		return model.AccessToken{}, constants.ErrAccessTokenNotFound
	}
	row := results[0]

	expiresAt, err := dbutils.ParseTimeField(row["expires_at"], "expires_at")
	if err != nil {
		logger.Error("Error parsing time field", log.Error(err))
		return model.AccessToken{}, err
	}

	tokenValueStr, ok := row["access_token"].(string)
	if !ok {
		return model.AccessToken{}, fmt.Errorf("failed to parse access_token as string")
	}
	scope, ok := row["scope"].(string)
	if !ok {
		return model.AccessToken{}, fmt.Errorf("failed to parse scope as string")
	}
	clientID, ok := row["client_id"].(string)
	if !ok {
		return model.AccessToken{}, fmt.Errorf("failed to parse client_id as string")
	}
	userID, ok := row["user_id"].(string)
	if !ok {
		return model.AccessToken{}, fmt.Errorf("failed to parse user_id as string")
	}

	return model.AccessToken{
		Token:     tokenValueStr,
		ExpiresAt: expiresAt,
		Scope:     scope,
		ClientID:  clientID,
		UserID:    userID,
	}, nil
}

// GetRefreshToken retrieves a refresh token record by its value.
func (ts *TokenStore) GetRefreshToken(tokenValue string) (model.RefreshToken, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.RefreshToken{}, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(constants.QueryGetRefreshToken, tokenValue)
	if err != nil {
		return model.RefreshToken{}, fmt.Errorf("error while retrieving refresh token: %w", err)
	}
	if len(results) == 0 {
		return model.RefreshToken{}, constants.ErrRefreshTokenNotFound
	}
	row := results[0]

	expiresAt, err := dbutils.ParseNullableTimeField(row["expires_at"], "expires_at")
	if err != nil {
		logger.Error("Error parsing time field", log.Error(err))
		return model.RefreshToken{}, err
	}

	tokenValueStr, ok := row["refresh_token"].(string)
	if !ok {
		return model.RefreshToken{}, fmt.Errorf("failed to parse refresh_token as string")
	}
	scope, ok := row["scope"].(string)
	if !ok {
		return model.RefreshToken{}, fmt.Errorf("failed to parse scope as string")
	}
	clientID, ok := row["client_id"].(string)
	if !ok {
		return model.RefreshToken{}, fmt.Errorf("failed to parse client_id as string")
	}
	userID, ok := row["user_id"].(string)
	if !ok {
		return model.RefreshToken{}, fmt.Errorf("failed to parse user_id as string")
	}

	return model.RefreshToken{
		Token:     tokenValueStr,
		ExpiresAt: expiresAt,
		Scope:     scope,
		ClientID:  clientID,
		UserID:    userID,
	}, nil
}

// RevokeAccessToken deletes an access token and reports whether a record was removed.
func (ts *TokenStore) RevokeAccessToken(tokenValue string) (bool, error) {
	return ts.revokeByValue(constants.QueryDeleteAccessToken, tokenValue)
}

// RevokeRefreshToken deletes a refresh token and reports whether a record was removed.
func (ts *TokenStore) RevokeRefreshToken(tokenValue string) (bool, error) {
	return ts.revokeByValue(constants.QueryDeleteRefreshToken, tokenValue)
}

// revokeByValue deletes a token record by value. The conditional delete's
// affected-row count gives atomic delete-and-report semantics.
func (ts *TokenStore) revokeByValue(query dbmodel.DBQuery, tokenValue string) (bool, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := ts.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return false, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(query, tokenValue)
	if err != nil {
		return false, fmt.Errorf("error while deleting token: %w", err)
	}

	return rowsAffected > 0, nil
}
