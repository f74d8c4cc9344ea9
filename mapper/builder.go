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

type patternRule struct {
	// pattern is the raw code pattern (may contain '_' wildcards). It is
	// validated/normalized when we build the trie.
	pattern string
	// val is the numeric transport status to apply when this pattern matches.
	// For HTTP this is the final value; for gRPC we store ints in the builder
	// and convert to codes.Code later.
	val int
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-class HTTP defaults that override library defaults.
	httpDefaults map[sqlstate.Class]int
	// grpcDefaults holds per-class gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[sqlstate.Class]int

	// httpOverride holds exact per-code HTTP overrides (higher than defaults).
	httpOverride map[sqlstate.Code]int
	// grpcOverride holds exact per-code gRPC overrides as ints; converted in New().
	grpcOverride map[sqlstate.Code]int

	// httpPatterns holds LPM rules for HTTP, defined as raw patternRule and
	// later compiled into a code trie.
	httpPatterns []patternRule
	// grpcPatterns holds LPM rules for gRPC.
	grpcPatterns []patternRule

	// global fallbacks used when a class has no default at all — notably the
	// unknown-class sentinel.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpDefaults: make(map[sqlstate.Class]int, len(defaultHTTP)),
		grpcDefaults: make(map[sqlstate.Class]int, len(defaultGRPC)),

		httpOverride: make(map[sqlstate.Code]int, len(defaultHTTPCode)),
		grpcOverride: make(map[sqlstate.Code]int, len(defaultGRPCCode)),

		// hard fallbacks if the class was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
