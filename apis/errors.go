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

package apis

import "dirpx.dev/pgstate/sqlstate"

// ClassedError represents an error that is classified into a two-character
// SQLSTATE *class*.
//
// A class denotes a broad category of failure, such as:
//   - "22" — data exception (division by zero, bad cast, ...),
//   - "23" — integrity constraint violation,
//   - "42" — syntax error or access rule violation,
//   - "08" — connection exception.
//
// Classes are stable and enumerable. They are the primary value that
// higher-level adapters (HTTP, gRPC) use to decide which transport status to
// return when no code-specific rule applies.
//
// Implementations are expected to return a resolved class — either one
// registered in the sqlstate package or the sqlstate.UnknownClass sentinel.
// Adapters should treat the sentinel as an internal/server error.
type ClassedError interface {
	error

	// ErrorClass returns the resolved SQLSTATE class.
	//
	// The returned value MUST be either a registered class or the unknown
	// sentinel; callers never see a raw, unvalidated prefix here.
	ErrorClass() sqlstate.Class
}

// CodedError represents an error that carries the full five-character
// SQLSTATE code in addition to the class.
//
// While the class answers "what kind of failure is this?", the code answers
// "which exact condition happened?".
//
// Examples:
//
//	class: "23"
//	code:  "23505" -> a unique constraint was violated
//
//	class: "42"
//	code:  "42601" -> the statement had a syntax error
//
// Having a separate interface for codes allows handling to gracefully
// degrade: a boundary that has no rule for the exact code can still act on
// the class.
type CodedError interface {
	error

	// SQLState returns the five-character code, possibly the unknown
	// sentinel. The string form (rather than sqlstate.Code) matches the
	// feature-detection convention of PostgreSQL drivers, so driver errors
	// and this module's errors satisfy the same interface.
	SQLState() string
}

// DetailedError represents an error that exposes zero or more structured
// diagnostic details — the DETAIL, HINT and position fields a server may
// attach to a failure.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no extra diagnostics".
type DetailedError interface {
	error

	// ErrorDetails returns structured diagnostics of the error. May return nil.
	ErrorDetails() []Detail
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
