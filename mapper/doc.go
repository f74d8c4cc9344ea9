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

// Package mapper provides deterministic, immutable mappings from SQLSTATE
// identities (dirpx.dev/pgstate/sqlstate) to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// In pgstate a server failure is expressed in two parts:
//
//  1. a two-character Class (e.g. sqlstate.ClassIntegrityConstraintViolation),
//  2. the full five-character Code (e.g. sqlstate.UniqueViolation).
//
// Transport layers (HTTP handlers, REST gateways, gRPC servers) need to turn
// this pair into concrete status codes. Package mapper does that in a way that
// is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per class or code;
//   - pattern-aware — callers can add fine-grained rules for code ranges;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code (built-in or user-registered);
//  2. longest-prefix-match (LPM) on the Code;
//  3. per-Class default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Pattern rules are character-aware: a pattern is a prefix of a code, and '_'
// matches exactly one character. For example:
//
//	WithHTTPPattern("22P", http.StatusBadRequest)     // the PostgreSQL-extension data exceptions
//	WithHTTPPattern("2200_", http.StatusBadRequest)   // 22001..2200Z
//
// The more specific pattern wins.
//
// # Library defaults
//
// The package ships with defaults for every registered class, mapping them to
// standard net/http constants and grpc/codes values (e.g. class 22 -> 400 /
// InvalidArgument, class 28 -> 401 / Unauthenticated, class 08 -> 503 /
// Unavailable), plus a few exact-code rules where the class is too coarse
// (23505 -> 409 / AlreadyExists, 42501 -> 403 / PermissionDenied). These can
// be adjusted at build time. The unknown sentinels always resolve to the
// fallback.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(sqlstate.QueryCanceled, 499),   // nginx-style
//	    mapper.WithHTTPPattern("40P", http.StatusConflict),
//	)
//	if err != nil {
//	    // invalid pattern, etc.
//	}
//
//	st := m.Status(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
//	// st.HTTP == 409, st.GRPC == codes.Aborted
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular (class, code) was resolved, including which tier matched
// and, for patterns, which pattern was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps or slices.
// This makes it safe to share a single instance across handlers, goroutines,
// and requests.
package mapper
