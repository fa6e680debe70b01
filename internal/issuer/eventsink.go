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

package issuer

import "github.com/emberauth/ember/internal/system/log"

// Operation identifies a credential issuer operation for observability events.
type Operation string

// Credential issuer operations.
const (
	OpAuthorize               Operation = "authorize"
	OpExchange                Operation = "exchange"
	OpIssueCredentials        Operation = "issueCredentials"
	OpRefresh                 Operation = "refresh"
	OpRevokeAuthorizationCode Operation = "revokeAuthorizationCode"
	OpRevokeRefreshToken      Operation = "revokeRefreshToken"
	OpIntrospectAccessToken   Operation = "introspectAccessToken"
)

// EventSink receives notifications at well-defined points of each issuer
// operation. Implementations must be safe for concurrent use.
type EventSink interface {
	OperationStarted(op Operation)
	OperationSucceeded(op Operation)
	OperationFailed(op Operation, errorCode string)
}

// logEventSink is the default EventSink backed by the system logger.
type logEventSink struct {
	logger *log.Logger
}

// NewLogEventSink creates an EventSink that logs operation events.
func NewLogEventSink() EventSink {
	return &logEventSink{
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CredentialIssuer")),
	}
}

// OperationStarted logs the start of an operation.
func (s *logEventSink) OperationStarted(op Operation) {
	s.logger.Debug("Operation started", log.String("operation", string(op)))
}

// OperationSucceeded logs the successful completion of an operation.
func (s *logEventSink) OperationSucceeded(op Operation) {
	s.logger.Debug("Operation succeeded", log.String("operation", string(op)))
}

// OperationFailed logs the failure of an operation.
func (s *logEventSink) OperationFailed(op Operation, errorCode string) {
	s.logger.Warn("Operation failed", log.String("operation", string(op)),
		log.String("errorCode", errorCode))
}
