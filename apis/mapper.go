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

import (
	"dirpx.dev/pgstate/sqlstate"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the mapper rules.
// It resolves a SQLSTATE class (and optionally the full code) into transport
// statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given class and code.
	// If no code-specific rule exists, the mapper must fall back to the class-level rule.
	HTTPStatus(cl sqlstate.Class, c sqlstate.Code) int

	// GRPCStatus returns the gRPC status code for the given class and code.
	// If no code-specific rule exists, the mapper must fall back to the class-level rule.
	GRPCStatus(cl sqlstate.Class, c sqlstate.Code) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same matching logic.
	Status(cl sqlstate.Class, c sqlstate.Code) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(cl sqlstate.Class, c sqlstate.Code) string
}

// Status represents a resolved pair of transport statuses for a single error.
// It is the final output of the mapper and can be written directly to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
