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

// ErrorDescriptor is a flat, transport-friendly description of a known
// SQLSTATE condition.
//
// This type intentionally uses strings (not the sqlstate value types) so that
// it can live in the public "apis" layer and be marshaled by adapters (HTTP,
// gRPC) without further conversion.
//
// Implementations may choose to store a richer descriptor internally, but
// this shape is what the rest of the system can rely on.
type ErrorDescriptor struct {
	// Class is the two-character SQLSTATE class, e.g. "23", "42".
	//
	// Implementations SHOULD store only resolved classes here — registered
	// ones or the unknown sentinel.
	Class string `json:"class"`

	// Code is the five-character SQLSTATE code, e.g. "23505", "42601".
	//
	// Implementations SHOULD store only resolved codes here.
	Code string `json:"code"`

	// Condition is the display name of the code, e.g. "UniqueViolation",
	// "SyntaxError". The unknown sentinel carries "UnknownSQLState".
	Condition string `json:"condition,omitempty"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// condition is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this condition is exposed over gRPC. A value of 0 means
	// "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly default message or template that
	// can be used when the error instance itself did not provide one.
	Message string `json:"message,omitempty"`
}
