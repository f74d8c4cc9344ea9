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

package codetrie

import "errors"

// Trie is a character-level prefix index for five-character SQLSTATE codes.
// Each node represents one character; the wildcard '_' matches exactly one
// character. The trie supports longest-prefix-match (LPM), so a more specific
// rule wins over a shorter one.
type Trie[T any] struct {
	// children contains next characters, including '_' for a one-character wildcard.
	children map[byte]*Trie[T]
	// hasVal marks that this node carries a value for the pattern ending here.
	hasVal bool
	val    T
	// pattern is the canonical pattern (with '_' if a wildcard was used) for
	// this node, set only when hasVal=true. It is used by MatchWithPattern
	// for Explain(), so we don't build strings during lookup.
	pattern string
}

var (
	// ErrInvalidPattern is returned when inserting a pattern that is empty,
	// longer than a full code, contains characters outside the SQLSTATE
	// alphabet, or consists only of wildcards.
	ErrInvalidPattern = errors.New("codetrie: invalid pattern")
)

// maxDepth is the length of a full SQLSTATE code.
const maxDepth = 5

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[byte]*Trie[T])}
}

// Insert adds a code pattern to the trie and associates it with val.
//
// Examples:
//
//	"22"      — every data exception
//	"22P"     — the PostgreSQL-extension data exceptions
//	"2200_"   — 22001..2200Z, one wildcard character
//	"23505"   — exactly one code
//
// A pattern is 1 to 5 characters from [0-9A-Z], where '_' matches exactly one
// character. A pattern made only of '_' is rejected, because it is too
// generic. Returns ErrInvalidPattern on malformed input.
func (t *Trie[T]) Insert(pattern string, val T) error {
	if t == nil {
		return ErrInvalidPattern
	}
	if len(pattern) == 0 || len(pattern) > maxDepth {
		return ErrInvalidPattern
	}

	// Require at least one non-wildcard character to avoid catching everything.
	allWild := true
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if !validPatternChar(c) {
			return ErrInvalidPattern
		}
		if c != '_' {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPattern
	}

	cur := t
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		child, exists := cur.children[c]
		if !exists {
			child = New[T]()
			cur.children[c] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		// build pattern once; cost is at build time, not on hot path
		cur.pattern = pattern
	}
	return nil
}

// Match finds the best (deepest) pattern match for a full code string.
// Both exact character matches and '_' wildcard branches are explored.
// It returns (value, true) on success.
// If the code is invalid or nothing matches, it returns the zero value and false.
func (t *Trie[T]) Match(code string) (T, bool) {
	var zero T
	if t == nil {
		return zero, false
	}
	bestDepth := -1
	var bestVal T

	// dfs consumes one character per level; 'depth' characters are already
	// matched. It records the deepest node that carries a value.
	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
		}
		if depth >= len(code) {
			return
		}
		c := code[depth]
		if !validCodeChar(c) {
			return // invalid character => stop this path
		}
		// exact branch
		if next, ok := n.children[c]; ok {
			dfs(next, depth+1)
		}
		// wildcard branch
		if next, ok := n.children['_']; ok {
			dfs(next, depth+1)
		}
	}

	dfs(t, 0)
	if bestDepth < 0 {
		return zero, false
	}
	return bestVal, true
}

// MatchWithPattern returns value + the stored rule pattern (if any) for Explain().
// It reuses the same traversal as Match but keeps a pointer to the deepest
// node that had a value; the pattern string is taken from the node.
func (t *Trie[T]) MatchWithPattern(code string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	var dfs func(n *Trie[T], depth int)
	dfs = func(n *Trie[T], depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if depth >= len(code) {
			return
		}
		c := code[depth]
		if !validCodeChar(c) {
			return
		}
		if next, ok := n.children[c]; ok {
			dfs(next, depth+1)
		}
		if next, ok := n.children['_']; ok {
			dfs(next, depth+1)
		}
	}

	dfs(t, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// validPatternChar reports whether c may appear in an inserted pattern:
// the SQLSTATE alphabet [0-9A-Z] plus the '_' wildcard.
func validPatternChar(c byte) bool {
	if c == '_' {
		return true
	}
	return validCodeChar(c)
}

// validCodeChar reports whether c belongs to the SQLSTATE alphabet [0-9A-Z].
func validCodeChar(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
}
