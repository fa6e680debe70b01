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

// Package store provides functionality for handling authorization code persistence and retrieval.
package store

import (
	"fmt"

	"github.com/emberauth/ember/internal/authzcode/constants"
	"github.com/emberauth/ember/internal/authzcode/model"
	"github.com/emberauth/ember/internal/system/database/provider"
	dbutils "github.com/emberauth/ember/internal/system/database/utils"
	"github.com/emberauth/ember/internal/system/log"
)

const loggerComponentName = "AuthorizationCodeStore"

// AuthorizationCodeStoreInterface defines the interface for managing authorization codes.
type AuthorizationCodeStoreInterface interface {
	InsertAuthorizationCode(authzCode model.AuthorizationCode) error
	GetAuthorizationCode(code string) (model.AuthorizationCode, error)
	// ConsumeAuthorizationCode atomically deletes the code and reports whether a
	// record was removed. At most one concurrent caller observes true for a
	// given code value; this is what enforces single-use semantics.
	ConsumeAuthorizationCode(code string) (bool, error)
}

// AuthorizationCodeStore implements the AuthorizationCodeStoreInterface.
type AuthorizationCodeStore struct {
	DBProvider provider.DBProviderInterface
}

// NewAuthorizationCodeStore creates a new instance of AuthorizationCodeStore.
func NewAuthorizationCodeStore() AuthorizationCodeStoreInterface {
	return &AuthorizationCodeStore{
		DBProvider: provider.NewDBProvider(),
	}
}

// InsertAuthorizationCode inserts a new authorization code into the database.
// A duplicate code value violates the table's uniqueness constraint and
// surfaces as a storage error.
func (acs *AuthorizationCodeStore) InsertAuthorizationCode(authzCode model.AuthorizationCode) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := acs.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	_, err = dbClient.Execute(constants.QueryInsertAuthorizationCode, authzCode.Code,
		authzCode.ExpiresAt, authzCode.RedirectURI, authzCode.Scope, authzCode.ClientID,
		authzCode.UserID)
	if err != nil {
		logger.Error("Failed to insert authorization code", log.Error(err))
		return fmt.Errorf("failed to insert authorization code: %w", err)
	}

	return nil
}

// GetAuthorizationCode retrieves an authorization code record by its value.
func (acs *AuthorizationCodeStore) GetAuthorizationCode(code string) (model.AuthorizationCode, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := acs.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return model.AuthorizationCode{}, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	results, err := dbClient.Query(constants.QueryGetAuthorizationCode, code)
	if err != nil {
		return model.AuthorizationCode{}, fmt.Errorf("error while retrieving authorization code: %w", err)
	}
	if len(results) == 0 {
		return model.AuthorizationCode{}, constants.ErrAuthorizationCodeNotFound
	}
	row := results[0]

	expiresAt, err := dbutils.ParseTimeField(row["expires_at"], "expires_at")
	if err != nil {
		logger.Error("Error parsing time field", log.Error(err))
		return model.AuthorizationCode{}, err
	}

	codeValue, ok := row["authorization_code"].(string)
	if !ok {
		return model.AuthorizationCode{}, fmt.Errorf("failed to parse authorization_code as string")
	}
	redirectURI, ok := row["redirect_uri"].(string)
	if !ok {
		return model.AuthorizationCode{}, fmt.Errorf("failed to parse redirect_uri as string")
	}
	scope, ok := row["scope"].(string)
	if !ok {
		return model.AuthorizationCode{}, fmt.Errorf("failed to parse scope as string")
	}
	clientID, ok := row["client_id"].(string)
	if !ok {
		return model.AuthorizationCode{}, fmt.Errorf("failed to parse client_id as string")
	}
	userID, ok := row["user_id"].(string)
	if !ok {
		return model.AuthorizationCode{}, fmt.Errorf("failed to parse user_id as string")
	}

	return model.AuthorizationCode{
		Code:        codeValue,
		ExpiresAt:   expiresAt,
		RedirectURI: redirectURI,
		Scope:       scope,
		ClientID:    clientID,
		UserID:      userID,
	}, nil
}

// ConsumeAuthorizationCode deletes an authorization code and reports whether a record was removed.
// The conditional delete's affected-row count decides the winner under concurrent exchanges;
// a read-then-delete pair would reintroduce the race.
func (acs *AuthorizationCodeStore) ConsumeAuthorizationCode(code string) (bool, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbClient, err := acs.DBProvider.GetDBClient("runtime")
	if err != nil {
		logger.Error("Failed to get database client", log.Error(err))
		return false, err
	}
	defer func() {
		if closeErr := dbClient.Close(); closeErr != nil {
			logger.Error("Failed to close database client", log.Error(closeErr))
		}
	}()

	rowsAffected, err := dbClient.Execute(constants.QueryDeleteAuthorizationCode, code)
	if err != nil {
		return false, fmt.Errorf("error while deleting authorization code: %w", err)
	}

	return rowsAffected > 0, nil
}
