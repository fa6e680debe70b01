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

// Package model defines the data structures for OAuth client records.
package model

import "slices"

// Client represents a registered OAuth client as stored in the database.
// Client records are provisioned out of band and are read-only to this layer.
type Client struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Grants       []string
}

// ClientView is the external view of a client exposed to the grant-flow engine.
type ClientView struct {
	ID           string   `json:"id"`
	Grants       []string `json:"grants"`
	RedirectURIs []string `json:"redirectUris"`
}

// HasGrant reports whether the client permits the given grant type.
func (c *Client) HasGrant(grant string) bool {
	return slices.Contains(c.Grants, grant)
}

// ToView converts a stored client record into its external view.
func (c *Client) ToView() *ClientView {
	return &ClientView{
		ID:           c.ClientID,
		Grants:       slices.Clone(c.Grants),
		RedirectURIs: []string{c.CallbackURL},
	}
}

// HasGrant reports whether the client view permits the given grant type.
func (v *ClientView) HasGrant(grant string) bool {
	return slices.Contains(v.Grants, grant)
}
