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

// Package constants defines constants and queries used by the client registry.
package constants

import (
	"errors"

	dbmodel "github.com/emberauth/ember/internal/system/database/model"
)

// ErrClientNotFound is returned by the store when no client record matches.
var ErrClientNotFound = errors.New("client not found")

// QueryGetClientByClientID is the query to retrieve a client by its client ID.
var QueryGetClientByClientID = dbmodel.DBQuery{
	ID:          "CLQ-00001",
	Query:       "SELECT CLIENT_ID, CLIENT_SECRET, CALLBACK_URL, GRANTS FROM OAUTH_CLIENT WHERE CLIENT_ID = $1",
	SQLiteQuery: "SELECT CLIENT_ID, CLIENT_SECRET, CALLBACK_URL, GRANTS FROM OAUTH_CLIENT WHERE CLIENT_ID = ?",
}
