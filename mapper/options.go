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

import "dirpx.dev/pgstate/sqlstate"

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given SQLSTATE class. This affects the fallback value used when
// no code-specific rule is found.
func WithHTTPDefault(cl sqlstate.Class, http int) Option {
	return func(b *builder) { b.httpDefaults[cl] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given SQLSTATE class. This affects the fallback value used when
// no code-specific rule is found.
func WithGRPCDefault(cl sqlstate.Class, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[cl] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given code.
// Overrides take precedence over pattern matches (LPM) and class defaults.
func WithHTTPOverride(c sqlstate.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given code.
// Overrides take precedence over pattern matches (LPM) and class defaults.
func WithGRPCOverride(c sqlstate.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPPattern adds an HTTP longest-prefix-match rule. The pattern is
// evaluated against the five-character code. A more specific pattern wins
// over a shorter one. Use '_' to match a single character.
func WithHTTPPattern(pattern string, http int) Option {
	return func(b *builder) { b.httpPatterns = append(b.httpPatterns, patternRule{pattern, http}) }
}

// WithGRPCPattern adds a gRPC longest-prefix-match rule. The pattern is
// evaluated against the five-character code. A more specific pattern wins
// over a shorter one. Use '_' to match a single character.
func WithGRPCPattern(pattern string, grpc int) Option {
	return func(b *builder) { b.grpcPatterns = append(b.grpcPatterns, patternRule{pattern, grpc}) }
}
