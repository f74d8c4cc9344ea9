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

import (
	"errors"
	"testing"
)

func mustInsert(t *testing.T, tr *Trie[int], pattern string, val int) {
	t.Helper()
	if err := tr.Insert(pattern, val); err != nil {
		t.Fatalf("Insert(%q): %v", pattern, err)
	}
}

func TestInsert_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"too long", "235051"},
		{"lowercase", "23a05"},
		{"bad char", "23-05"},
		{"all wildcards", "_____"},
		{"single wildcard", "_"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New[int]()
			if err := tr.Insert(tt.pattern, 1); !errors.Is(err, ErrInvalidPattern) {
				t.Fatalf("Insert(%q) = %v, want ErrInvalidPattern", tt.pattern, err)
			}
		})
	}
}

func TestMatch_LongestWins(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "23", 1)
	mustInsert(t, tr, "235", 2)
	mustInsert(t, tr, "23505", 3)

	tests := []struct {
		code string
		want int
		ok   bool
	}{
		{"23505", 3, true}, // full pattern beats both prefixes
		{"23503", 2, true}, // "235" beats "23"
		{"23001", 1, true},
		{"22012", 0, false},
	}
	for _, tt := range tests {
		got, ok := tr.Match(tt.code)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("Match(%q) = (%d, %v), want (%d, %v)", tt.code, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMatch_Wildcard(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "22", 1)
	mustInsert(t, tr, "2200_", 2)

	if got, _ := tr.Match("2200C"); got != 2 {
		t.Fatalf("wildcard pattern must match: got %d", got)
	}
	if got, _ := tr.Match("22012"); got != 1 {
		t.Fatalf("wildcard must not match a different fourth character: got %d", got)
	}

	// an exact pattern at the same depth wins over a wildcard one: both match
	// at depth 5, but the exact branch is explored first and the wildcard
	// branch does not improve the depth
	mustInsert(t, tr, "2200B", 3)
	if got, _ := tr.Match("2200B"); got != 3 {
		t.Fatalf("exact must win over wildcard at equal depth: got %d", got)
	}
}

func TestMatch_InvalidCodeChar(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "23", 1)

	// matching stops at the bad character; the prefix matched so far still counts
	if got, ok := tr.Match("23x05"); !ok || got != 1 {
		t.Fatalf("Match = (%d, %v)", got, ok)
	}
	if _, ok := tr.Match("x2305"); ok {
		t.Fatal("leading invalid character must not match")
	}
	if _, ok := tr.Match(""); ok {
		t.Fatal("empty code must not match a valueless root")
	}
}

func TestMatchWithPattern(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "40", 1)
	mustInsert(t, tr, "40P__", 2)

	v, ok, pat := tr.MatchWithPattern("40P01")
	if !ok || v != 2 || pat != "40P__" {
		t.Fatalf("MatchWithPattern = (%d, %v, %q)", v, ok, pat)
	}
	v, ok, pat = tr.MatchWithPattern("40001")
	if !ok || v != 1 || pat != "40" {
		t.Fatalf("MatchWithPattern = (%d, %v, %q)", v, ok, pat)
	}
}

func TestInsert_Overwrite(t *testing.T) {
	tr := New[int]()
	mustInsert(t, tr, "23505", 1)
	mustInsert(t, tr, "23505", 2)
	if got, _ := tr.Match("23505"); got != 2 {
		t.Fatalf("second insert must overwrite: got %d", got)
	}
}
