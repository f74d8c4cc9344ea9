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
	"fmt"
	"strings"

	"dirpx.dev/pgstate/apis"
	"dirpx.dev/pgstate/mapper/internal/codetrie"
	"dirpx.dev/pgstate/sqlstate"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (per-class HTTP & gRPC, plus a
//     few built-in exact-code rules).
//  2. Apply user-provided options (defaults, overrides, pattern rules).
//  3. Normalize and validate all code patterns.
//  4. Build the HTTP and gRPC code tries supporting longest-prefix-match
//     with '_' as a single-character wildcard.
//  5. Freeze all maps and tries into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid patterns or
// configuration issues during normalization or trie construction.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}
	for k, v := range defaultHTTPCode {
		b.httpOverride[k] = v
	}
	for k, v := range defaultGRPCCode {
		b.grpcOverride[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides, patterns, etc.).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Build the HTTP pattern trie.
	// Each rule pattern is normalized and validated before insertion.
	var httpTrie *codetrie.Trie[int]
	if len(b.httpPatterns) > 0 {
		httpTrie = codetrie.New[int]()
		for _, r := range b.httpPatterns {
			p, err := normalizeAndValidatePattern(r.pattern)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid HTTP code pattern %q: %w", r.pattern, err)
			}
			if err := httpTrie.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert HTTP pattern %q: %w", p, err)
			}
		}
	}

	// (4) Build the gRPC pattern trie.
	// Values are stored as int in the builder and converted to codes.Code here.
	var grpcTrie *codetrie.Trie[codes.Code]
	if len(b.grpcPatterns) > 0 {
		grpcTrie = codetrie.New[codes.Code]()
		for _, r := range b.grpcPatterns {
			p, err := normalizeAndValidatePattern(r.pattern)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid gRPC code pattern %q: %w", r.pattern, err)
			}
			if err := grpcTrie.Insert(p, codes.Code(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert gRPC pattern %q: %w", p, err)
			}
		}
	}

	// (5) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated; tries are shared (they are immutable).
	m := &mapper{
		httpDefault:  freezeHTTPDefaults(b.httpDefaults),
		grpcDefault:  freezeGRPCDefaults(b.grpcDefaults),
		httpOverride: freezeHTTPOverrides(b.httpOverride),
		grpcOverride: freezeGRPCOverrides(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-class
// defaults, per-code exact overrides, and wildcard-aware code-pattern tries.
// Lookups are O(code length) and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given SQLSTATE class.
	// Used when no code-level rule and no override are present.
	httpDefault map[sqlstate.Class]int

	// grpcDefault holds the base gRPC status for a given SQLSTATE class.
	grpcDefault map[sqlstate.Class]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over pattern rules and class defaults.
	httpOverride map[sqlstate.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[sqlstate.Code]codes.Code

	// httpTrie resolves HTTP statuses from code patterns (prefixes, with '_'
	// for one-character wildcards). Nil when no pattern rule was registered.
	httpTrie *codetrie.Trie[int]

	// grpcTrie resolves gRPC statuses from code patterns.
	grpcTrie *codetrie.Trie[codes.Code]

	// fallbackHTTP is used when there is no mapping at all for a class —
	// notably the unknown-class sentinel. Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a class.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given class and code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (built-in or explicitly registered);
//  2. longest-prefix-match pattern rule on the code;
//  3. per-class default (library or user overridden);
//  4. hardcoded ultimate fallback (500).
//
// The unknown sentinels match no tier and land on the fallback.
func (m *mapper) HTTPStatus(cl sqlstate.Class, c sqlstate.Code) int {
	// 1. Fast path: exact override for this code.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 2. Pattern LPM over the code.
	if m.httpTrie != nil {
		if v, ok := m.httpTrie.Match(string(c)); ok {
			return v
		}
	}

	// 3. Per-class default.
	if v, ok := m.httpDefault[cl]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given class and code.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order:
//  1. exact per-code override;
//  2. LPM by code pattern;
//  3. per-class default;
//  4. hardcoded fallback (codes.Internal).
func (m *mapper) GRPCStatus(cl sqlstate.Class, c sqlstate.Code) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 2. Trie-based LPM over the code.
	if m.grpcTrie != nil {
		if v, ok := m.grpcTrie.Match(string(c)); ok {
			return v
		}
	}

	// 3. Default for this class.
	if v, ok := m.grpcDefault[cl]; ok {
		return v
	}

	// 4. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single failure.
func (m *mapper) Status(cl sqlstate.Class, c sqlstate.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(cl, c),
		GRPC: m.GRPCStatus(cl, c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (class, code) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, pattern, default, or fallback) and, for pattern matches,
// which pattern was used.
//
// Example output:
//
//	class="40" code="40P01"
//	http: source=pattern pattern="40P__" -> 409
//	grpc: source=default -> ABORTED(10)
//
// Notes:
//   - source ∈ {override | pattern | default | fallback}
//   - pattern is the rule as it was stored in the trie (may contain '_')
func (m *mapper) Explain(cl sqlstate.Class, c sqlstate.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "class=%q code=%q\n", cl, c)

	// ---- HTTP ----
	switch src, httpLine := m.explainHTTP(cl, c); src {
	case "override", "pattern", "default", "fallback":
		_, _ = fmt.Fprintln(&b, httpLine)
	default:
		_, _ = fmt.Fprintln(&b, "http: source=unknown")
	}

	// ---- gRPC ----
	switch src, grpcLine := m.explainGRPC(cl, c); src {
	case "override", "pattern", "default", "fallback":
		_, _ = fmt.Fprintln(&b, grpcLine)
	default:
		_, _ = fmt.Fprintln(&b, "grpc: source=unknown")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns the origin ("override", "pattern", "default", "fallback")
// and a formatted line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(cl sqlstate.Class, c sqlstate.Code) (source, line string) {
	// 1) exact per-code override
	if v, ok := m.httpOverride[c]; ok {
		return "override", fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) LPM against the code
	if m.httpTrie != nil {
		if v, ok, pat := m.httpTrie.MatchWithPattern(string(c)); ok {
			return "pattern", fmt.Sprintf("http: source=pattern pattern=%q -> %d", pat, v)
		}
	}

	// 3) per-class default
	if v, ok := m.httpDefault[cl]; ok {
		return "default", fmt.Sprintf("http: source=default -> %d", v)
	}

	// 4) global fallback
	return "fallback", fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns the origin ("override", "pattern", "default", "fallback")
// and a formatted line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(cl sqlstate.Class, c sqlstate.Code) (source, line string) {
	// 1) exact per-code override
	if v, ok := m.grpcOverride[c]; ok {
		return "override", fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 2) LPM against the code
	if m.grpcTrie != nil {
		if v, ok, pat := m.grpcTrie.MatchWithPattern(string(c)); ok {
			return "pattern", fmt.Sprintf("grpc: source=pattern pattern=%q -> %s(%d)", pat, strings.ToUpper(v.String()), int(v))
		}
	}

	// 3) per-class default
	if v, ok := m.grpcDefault[cl]; ok {
		return "default", fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 4) global fallback
	return "fallback", fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// normalizeAndValidatePattern ensures a code pattern is canonical and valid.
// Patterns follow the SQLSTATE alphabet: they are uppercased, must be 1 to 5
// characters of [0-9A-Z] or the '_' wildcard, and may not consist of
// wildcards only.
func normalizeAndValidatePattern(raw string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(raw))
	if p == "" {
		return "", fmt.Errorf("empty pattern")
	}
	if len(p) > sqlstate.CodeLength {
		return "", fmt.Errorf("pattern longer than a full code")
	}
	allWild := true
	for i := 0; i < len(p); i++ {
		if !validPatternChar(p[i]) {
			return "", fmt.Errorf("invalid character %q", p[i])
		}
		if p[i] != '_' {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("pattern cannot consist of '_' only")
	}
	return p, nil
}

// validPatternChar reports whether c may appear in a code pattern.
// Rules:
//   - the wildcard '_' is allowed;
//   - otherwise the character must belong to the SQLSTATE alphabet [0-9A-Z].
func validPatternChar(c byte) bool {
	if c == '_' {
		return true
	}
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
}
