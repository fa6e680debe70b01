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

// Client errors for credential issuer operations.
var (
	// ErrorCodeNotFound is the error returned when an authorization code does not exist.
	ErrorCodeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OCI-1001",
		Error:            "Authorization code not found",
		ErrorDescription: "The provided authorization code does not exist",
	}
	// ErrorCodeExpired is the error returned when an authorization code has expired.
	ErrorCodeExpired = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OCI-1002",
		Error:            "Authorization code expired",
		ErrorDescription: "The provided authorization code has expired",
	}
	// ErrorCodeAlreadyUsed is the error returned when an authorization code was already exchanged.
	ErrorCodeAlreadyUsed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OCI-1003",
		Error:            "Authorization code already used",
		ErrorDescription: "The provided authorization code has already been exchanged",
	}
	// ErrorAccessTokenNotFound is the error returned when an access token does not exist.
	ErrorAccessTokenNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OCI-1004",
		Error:            "Access token not found",
		ErrorDescription: "The provided access token does not exist",
	}
	// ErrorRefreshTokenNotFound is the error returned when a refresh token does not exist.
	ErrorRefreshTokenNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OCI-1005",
		Error:            "Refresh token not found",
		ErrorDescription: "The provided refresh token does not exist",
	}
	// ErrorRefreshTokenExpired is the error returned when a refresh token has expired.
	ErrorRefreshTokenExpired = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "OCI-1006",
		Error:            "Refresh token expired",
		ErrorDescription: "The provided refresh token has expired",
	}
)

// Server errors for credential issuer operations.
var (
	// ErrorStorageIntegrity is the error returned when the backing store fails
	// or reports an integrity violation such as a duplicate identity.
	ErrorStorageIntegrity = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "OCI-5001",
		Error:            "Storage integrity error",
		ErrorDescription: "The backing store reported a failure",
	}
)
