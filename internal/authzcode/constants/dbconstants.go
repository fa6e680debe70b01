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

// Package constants defines constants and queries used by the authorization code store.
package constants

import (
	"errors"

	dbmodel "github.com/emberauth/ember/internal/system/database/model"
)

// ErrAuthorizationCodeNotFound is returned by the store when no code record matches.
var ErrAuthorizationCodeNotFound = errors.New("authorization code not found")

// QueryInsertAuthorizationCode is the query to insert a new authorization code.
var QueryInsertAuthorizationCode = dbmodel.DBQuery{
	ID: "AZQ-00001",
	Query: "INSERT INTO OAUTH_AUTHZ_CODE (AUTHORIZATION_CODE, EXPIRES_AT, REDIRECT_URI, SCOPE, " +
		"CLIENT_ID, USER_ID) VALUES ($1, $2, $3, $4, $5, $6)",
	SQLiteQuery: "INSERT INTO OAUTH_AUTHZ_CODE (AUTHORIZATION_CODE, EXPIRES_AT, REDIRECT_URI, SCOPE, " +
		"CLIENT_ID, USER_ID) VALUES (?, ?, ?, ?, ?, ?)",
}

// QueryGetAuthorizationCode is the query to retrieve an authorization code by its value.
var QueryGetAuthorizationCode = dbmodel.DBQuery{
	ID: "AZQ-00002",
	Query: "SELECT AUTHORIZATION_CODE, EXPIRES_AT, REDIRECT_URI, SCOPE, CLIENT_ID, USER_ID " +
		"FROM OAUTH_AUTHZ_CODE WHERE AUTHORIZATION_CODE = $1",
	SQLiteQuery: "SELECT AUTHORIZATION_CODE, EXPIRES_AT, REDIRECT_URI, SCOPE, CLIENT_ID, USER_ID " +
		"FROM OAUTH_AUTHZ_CODE WHERE AUTHORIZATION_CODE = ?",
}

// QueryDeleteAuthorizationCode is the query to delete an authorization code by its value.
// The affected row count makes consumption atomic: at most one delete succeeds.
var QueryDeleteAuthorizationCode = dbmodel.DBQuery{
	ID:          "AZQ-00003",
	Query:       "DELETE FROM OAUTH_AUTHZ_CODE WHERE AUTHORIZATION_CODE = $1",
	SQLiteQuery: "DELETE FROM OAUTH_AUTHZ_CODE WHERE AUTHORIZATION_CODE = ?",
}
