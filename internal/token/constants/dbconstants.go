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

// Package constants defines constants and queries used by the token store.
package constants

import (
	"errors"

	dbmodel "github.com/emberauth/ember/internal/system/database/model"
)

// Store-level sentinel errors.
var (
	// ErrAccessTokenNotFound is returned by the store when no access token record matches.
	ErrAccessTokenNotFound = errors.New("access token not found")
	// ErrRefreshTokenNotFound is returned by the store when no refresh token record matches.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// QueryInsertAccessToken is the query to insert a new access token.
var QueryInsertAccessToken = dbmodel.DBQuery{
	ID: "TKQ-00001",
	Query: "INSERT INTO OAUTH_ACCESS_TOKEN (ACCESS_TOKEN, EXPIRES_AT, SCOPE, CLIENT_ID, USER_ID) " +
		"VALUES ($1, $2, $3, $4, $5)",
	SQLiteQuery: "INSERT INTO OAUTH_ACCESS_TOKEN (ACCESS_TOKEN, EXPIRES_AT, SCOPE, CLIENT_ID, USER_ID) " +
		"VALUES (?, ?, ?, ?, ?)",
}

// QueryInsertRefreshToken is the query to insert a new refresh token.
// EXPIRES_AT is nullable; a NULL value means the token never expires.
var QueryInsertRefreshToken = dbmodel.DBQuery{
	ID: "TKQ-00002",
	Query: "INSERT INTO OAUTH_REFRESH_TOKEN (REFRESH_TOKEN, EXPIRES_AT, SCOPE, CLIENT_ID, USER_ID) " +
		"VALUES ($1, $2, $3, $4, $5)",
	SQLiteQuery: "INSERT INTO OAUTH_REFRESH_TOKEN (REFRESH_TOKEN, EXPIRES_AT, SCOPE, CLIENT_ID, USER_ID) " +
		"VALUES (?, ?, ?, ?, ?)",
}

// QueryGetAccessToken is the query to retrieve an access token by its value.
var QueryGetAccessToken = dbmodel.DBQuery{
	ID: "TKQ-00003",
	Query: "SELECT ACCESS_TOKEN, EXPIRES_AT, SCOPE, CLIENT_ID, USER_ID FROM OAUTH_ACCESS_TOKEN " +
		"WHERE ACCESS_TOKEN = $1",
	SQLiteQuery: "SELECT ACCESS_TOKEN, EXPIRES_AT, SCOPE, CLIENT_ID, USER_ID FROM OAUTH_ACCESS_TOKEN " +
		"WHERE ACCESS_TOKEN = ?",
}

// QueryGetRefreshToken is the query to retrieve a refresh token by its value.
var QueryGetRefreshToken = dbmodel.DBQuery{
	ID: "TKQ-00004",
	Query: "SELECT REFRESH_TOKEN, EXPIRES_AT, SCOPE, CLIENT_ID, USER_ID FROM OAUTH_REFRESH_TOKEN " +
		"WHERE REFRESH_TOKEN = $1",
	SQLiteQuery: "SELECT REFRESH_TOKEN, EXPIRES_AT, SCOPE, CLIENT_ID, USER_ID FROM OAUTH_REFRESH_TOKEN " +
		"WHERE REFRESH_TOKEN = ?",
}

// QueryDeleteAccessToken is the query to delete an access token by its value.
var QueryDeleteAccessToken = dbmodel.DBQuery{
	ID:          "TKQ-00005",
	Query:       "DELETE FROM OAUTH_ACCESS_TOKEN WHERE ACCESS_TOKEN = $1",
	SQLiteQuery: "DELETE FROM OAUTH_ACCESS_TOKEN WHERE ACCESS_TOKEN = ?",
}

// QueryDeleteRefreshToken is the query to delete a refresh token by its value.
// The affected row count makes revocation atomic and idempotent.
var QueryDeleteRefreshToken = dbmodel.DBQuery{
	ID:          "TKQ-00006",
	Query:       "DELETE FROM OAUTH_REFRESH_TOKEN WHERE REFRESH_TOKEN = $1",
	SQLiteQuery: "DELETE FROM OAUTH_REFRESH_TOKEN WHERE REFRESH_TOKEN = ?",
}
