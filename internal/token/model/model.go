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

// Package model defines the data structures for access and refresh token records.
package model

import "time"

// AccessToken represents a stored access token record. The token value is the
// record identity. Expiry is enforced by the verifying caller, not by active
// deletion; expired records remain useful for audit and diagnostics.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
	Scope     string
	ClientID  string
	UserID    string
}

// IsExpired reports whether the access token has expired as of the given time.
func (t *AccessToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// RefreshToken represents a stored refresh token record. A nil ExpiresAt means
// the token never expires. Refresh tokens are reusable and are removed only by
// revocation or rotation.
type RefreshToken struct {
	Token     string
	ExpiresAt *time.Time
	Scope     string
	ClientID  string
	UserID    string
}

// IsExpired reports whether the refresh token has expired as of the given time.
// Tokens without an expiry never expire.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && t.ExpiresAt.Before(now)
}
