/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"net/http"

	"dirpx.dev/pgstate/sqlstate"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for SQLSTATE
// classes. These are only defaults: callers are expected to wrap or override
// them at the boundary where HTTP is actually produced (REST gateway, HTTP
// handler, etc.).
//
// The intent is to stay close to common REST conventions while reflecting
// the taxonomy's own semantics: client-correctable failures map to 4xx,
// server/resource conditions to 5xx. Classes with no entry here (including
// the unknown-class sentinel) resolve to the global fallback.
var defaultHTTP = map[sqlstate.Class]int{
	// 4xx — the statement or its inputs are at fault; retrying unchanged will fail again.
	sqlstate.ClassNoData:                            http.StatusNotFound,   // Cursor/result exhausted or absent.
	sqlstate.ClassSQLStatementNotYetComplete:        http.StatusBadRequest, // Protocol misuse by the client.
	sqlstate.ClassTriggeredActionException:          http.StatusBadRequest,
	sqlstate.ClassInvalidGrantor:                    http.StatusBadRequest,
	sqlstate.ClassInvalidRoleSpecification:          http.StatusBadRequest,
	sqlstate.ClassCaseNotFound:                      http.StatusBadRequest,
	sqlstate.ClassCardinalityViolation:              http.StatusBadRequest, // Query returned more rows than the context allows.
	sqlstate.ClassDataException:                     http.StatusBadRequest, // Bad cast, division by zero, malformed literal.
	sqlstate.ClassIntegrityConstraintViolation:      http.StatusConflict,   // Unique/foreign-key/check violations.
	sqlstate.ClassInvalidCursorState:                http.StatusBadRequest,
	sqlstate.ClassInvalidTransactionState:           http.StatusConflict, // Statement illegal in the current tx state.
	sqlstate.ClassInvalidSQLStatementName:           http.StatusBadRequest,
	sqlstate.ClassTriggeredDataChangeViolation:      http.StatusConflict,
	sqlstate.ClassInvalidAuthorizationSpecification: http.StatusUnauthorized, // Bad credentials / unknown role.
	sqlstate.ClassDependentPrivilegeDescriptorsStillExist: http.StatusConflict,
	sqlstate.ClassInvalidTransactionTermination:           http.StatusConflict,
	sqlstate.ClassInvalidCatalogName:                      http.StatusNotFound, // Database does not exist.
	sqlstate.ClassInvalidSchemaName:                       http.StatusNotFound, // Schema does not exist.
	sqlstate.ClassTransactionRollback:                     http.StatusConflict, // Serialization failure, deadlock; client may retry the tx.
	sqlstate.ClassSyntaxErrorOrAccessRuleViolation:        http.StatusBadRequest,
	sqlstate.ClassWithCheckOptionViolation:                http.StatusBadRequest,
	sqlstate.ClassInvalidCursorName:                       http.StatusBadRequest,
	sqlstate.ClassSavepointException:                      http.StatusBadRequest,
	sqlstate.ClassLocatorException:                        http.StatusBadRequest,
	sqlstate.ClassProgramLimitExceeded:                    http.StatusBadRequest, // Statement/row too large; the request must shrink.

	// 5xx — the server (or its environment) is at fault; retrying later may help.
	sqlstate.ClassConnectionException:            http.StatusServiceUnavailable, // Backend unreachable or rejected the session.
	sqlstate.ClassFeatureNotSupported:            http.StatusNotImplemented,
	sqlstate.ClassSQLRoutineException:            http.StatusInternalServerError,
	sqlstate.ClassExternalRoutineException:       http.StatusInternalServerError,
	sqlstate.ClassExternalRoutineInvocationException: http.StatusInternalServerError,
	sqlstate.ClassInsufficientResources:              http.StatusServiceUnavailable, // Out of memory/disk/connections.
	sqlstate.ClassObjectNotInPrerequisiteState:       http.StatusConflict,
	sqlstate.ClassOperatorIntervention:               http.StatusServiceUnavailable, // Shutdown, crash recovery, admin cancel.
	sqlstate.ClassSystemError:                        http.StatusInternalServerError,
	sqlstate.ClassSnapshotFailure:                    http.StatusConflict, // Snapshot too old; retry with a fresh snapshot.
	sqlstate.ClassConfigFileError:                    http.StatusInternalServerError,
	sqlstate.ClassFDWError:                           http.StatusBadGateway, // The failure is in a remote data source.
	sqlstate.ClassPLpgSQLError:                       http.StatusInternalServerError,
	sqlstate.ClassInternalError:                      http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mappings for SQLSTATE
// classes. These values align with canonical gRPC status semantics while
// preserving the taxonomy's meaning. As with HTTP, callers may override them
// at the transport edge if a different policy is required.
var defaultGRPC = map[sqlstate.Class]codes.Code{
	// Input / statement shape.
	sqlstate.ClassSQLStatementNotYetComplete:   codes.InvalidArgument,
	sqlstate.ClassTriggeredActionException:     codes.InvalidArgument,
	sqlstate.ClassInvalidGrantor:               codes.InvalidArgument,
	sqlstate.ClassInvalidRoleSpecification:     codes.InvalidArgument,
	sqlstate.ClassCaseNotFound:                 codes.InvalidArgument,
	sqlstate.ClassCardinalityViolation:         codes.InvalidArgument,
	sqlstate.ClassDataException:                codes.InvalidArgument,
	sqlstate.ClassInvalidSQLStatementName:      codes.InvalidArgument,
	sqlstate.ClassInvalidCursorName:            codes.InvalidArgument,
	sqlstate.ClassSyntaxErrorOrAccessRuleViolation: codes.InvalidArgument,
	sqlstate.ClassWithCheckOptionViolation:         codes.InvalidArgument,

	// Resource state / preconditions.
	sqlstate.ClassNoData:                     codes.NotFound,
	sqlstate.ClassInvalidCatalogName:         codes.NotFound,
	sqlstate.ClassInvalidSchemaName:          codes.NotFound,
	sqlstate.ClassInvalidCursorState:         codes.FailedPrecondition,
	sqlstate.ClassInvalidTransactionState:    codes.FailedPrecondition,
	sqlstate.ClassInvalidTransactionTermination: codes.FailedPrecondition,
	sqlstate.ClassObjectNotInPrerequisiteState:  codes.FailedPrecondition,
	sqlstate.ClassSavepointException:            codes.FailedPrecondition,
	sqlstate.ClassLocatorException:              codes.FailedPrecondition,

	// Conflicts / concurrency.
	sqlstate.ClassIntegrityConstraintViolation:            codes.FailedPrecondition,
	sqlstate.ClassTriggeredDataChangeViolation:            codes.Aborted,
	sqlstate.ClassDependentPrivilegeDescriptorsStillExist: codes.FailedPrecondition,
	sqlstate.ClassTransactionRollback:                     codes.Aborted, // Safe to retry the whole transaction.
	sqlstate.ClassSnapshotFailure:                         codes.Aborted,

	// AuthN.
	sqlstate.ClassInvalidAuthorizationSpecification: codes.Unauthenticated,

	// Availability / resources / lifecycle.
	sqlstate.ClassConnectionException:     codes.Unavailable,
	sqlstate.ClassOperatorIntervention:    codes.Unavailable,
	sqlstate.ClassInsufficientResources:   codes.ResourceExhausted,
	sqlstate.ClassProgramLimitExceeded:    codes.ResourceExhausted,
	sqlstate.ClassFDWError:                codes.Unavailable, // Remote source, not this server.

	// Server-side / unexpected.
	sqlstate.ClassFeatureNotSupported:                codes.Unimplemented,
	sqlstate.ClassSQLRoutineException:                codes.Internal,
	sqlstate.ClassExternalRoutineException:           codes.Internal,
	sqlstate.ClassExternalRoutineInvocationException: codes.Internal,
	sqlstate.ClassSystemError:                        codes.Internal,
	sqlstate.ClassConfigFileError:                    codes.Internal,
	sqlstate.ClassPLpgSQLError:                       codes.Internal,
	sqlstate.ClassInternalError:                      codes.Internal,
}

// defaultHTTPCode holds built-in exact-code HTTP rules for conditions whose
// class-level default is too coarse. Seeded into the builder's override tier,
// so user options replace them per code.
var defaultHTTPCode = map[sqlstate.Code]int{
	sqlstate.UniqueViolation:       http.StatusConflict,       // Create-on-existing; pairs with AlreadyExists below.
	sqlstate.InsufficientPrivilege: http.StatusForbidden,      // Authenticated but not allowed — class 42 would say 400.
	sqlstate.QueryCanceled:         http.StatusRequestTimeout, // Statement timeout or admin cancel, not a server fault.
}

// defaultGRPCCode holds built-in exact-code gRPC rules, symmetric with
// defaultHTTPCode.
var defaultGRPCCode = map[sqlstate.Code]codes.Code{
	sqlstate.UniqueViolation:       codes.AlreadyExists,
	sqlstate.InsufficientPrivilege: codes.PermissionDenied,
	sqlstate.QueryCanceled:         codes.Canceled,
}
