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

// Detail represents a single structured diagnostic attached to an error.
// This is a *view type* — small, transport-friendly, and suitable for JSON or
// proto marshaling.
//
// We keep it in apis so that different parts of the system (driver adapters,
// HTTP/gRPC adapters, loggers) can speak about "diagnostics" without
// importing the concrete error implementation.
//
// Typical usages:
//   - relay the server's DETAIL or HINT field;
//   - report the constraint, table or column a violation names;
//   - report the statement position of a syntax error.
type Detail struct {
	// Type is a short classifier of the detail, e.g. "detail", "hint",
	// "constraint", "position". Callers MAY leave it empty, but providing it
	// makes client-side handling simpler.
	Type string `json:"type,omitempty"`

	// Field carries the schema object the diagnostic names, e.g. the
	// constraint "users_email_key" or the column "email". For diagnostics
	// that name no object this may be empty.
	Field string `json:"field,omitempty"`

	// Value is the diagnostic text itself, e.g. the server's DETAIL line.
	Value string `json:"value,omitempty"`

	// Info carries optional extra structured data (for example, the table
	// and schema of a violated constraint). Keys and values should be chosen
	// so that they survive JSON/proto round-trips.
	Info map[string]string `json:"info,omitempty"`
}
