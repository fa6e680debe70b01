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

// Package model defines the data structures for authorization code records.
package model

import "time"

// AuthorizationCode represents a stored authorization code record.
// The code value itself is the record identity; records are deleted on
// exchange or revocation and never updated in place.
type AuthorizationCode struct {
	Code        string
	ExpiresAt   time.Time
	RedirectURI string
	Scope       string
	ClientID    string
	UserID      string
}

// IsExpired reports whether the code has expired as of the given time.
func (c *AuthorizationCode) IsExpired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}
