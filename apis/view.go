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

// ViewProvider is implemented by errors that can produce a transport-friendly,
// self-contained representation of themselves.
//
// This is useful for HTTP/gRPC adapters that want to send "the canonical form"
// of the error to the client without having to know about the concrete error
// type.
//
// The returned view MUST be safe to marshal (to JSON/proto) and SHOULD contain
// all information that is safe to disclose to the client.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error.
//
// This is *not* the concrete error type used internally — it is the shape that
// we are comfortable exposing over the wire or logging. Keeping it here (in
// apis) allows both HTTP and gRPC adapters to share the same struct.
type ErrorView struct {
	// Class is the two-character SQLSTATE class, e.g. "23", "42".
	Class string `json:"class"`
	// Code is the five-character SQLSTATE code, e.g. "23505", "42601".
	Code string `json:"code"`
	// Condition is the display name of the code, e.g. "UniqueViolation".
	Condition string `json:"condition,omitempty"`
	// Message is the user-facing message.
	//
	// This is the rendered form: the verbose text when the error captured
	// one, otherwise the short text, terminator stripped.
	Message string `json:"message,omitempty"`
	// Details is an optional list of diagnostic fields attached to the error.
	//
	// The exact shape of each detail is implementation-specific.
	Details []Detail `json:"details,omitempty"`
}
