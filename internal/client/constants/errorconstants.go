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

package constants

import "github.com/emberauth/ember/internal/system/error/serviceerror"

// Client errors for client registry operations.
var (
	// ErrorClientNotFound is the error returned when no client matches the given credentials.
	// A secret mismatch is reported identically to a missing client so callers
	// cannot probe for client existence.
	ErrorClientNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CLI-1001",
		Error:            "Client not found",
		ErrorDescription: "No client was found for the given credentials",
	}
	// ErrorInvalidClient is the error returned when a client exists but lacks the required grant.
	ErrorInvalidClient = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CLI-1002",
		Error:            "Invalid client",
		ErrorDescription: "The client does not permit the requested grant type",
	}
)

// Server errors for client registry operations.
var (
	// ErrorInternalClientLookupError is the error returned when the client lookup fails unexpectedly.
	ErrorInternalClientLookupError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CLI-5001",
		Error:            "Internal server error",
		ErrorDescription: "Failed to resolve the client",
	}
)
