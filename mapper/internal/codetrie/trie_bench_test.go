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

import "testing"

func benchTrie(b *testing.B) *Trie[int] {
	b.Helper()
	tr := New[int]()
	patterns := []string{
		"08", "22", "2200_", "22P", "23", "23505", "28", "40", "40P__",
		"42", "425", "53", "57", "57014", "HV", "P0",
	}
	for i, p := range patterns {
		if err := tr.Insert(p, i); err != nil {
			b.Fatalf("Insert(%q): %v", p, err)
		}
	}
	return tr
}

func BenchmarkMatch_Hit(b *testing.B) {
	tr := benchTrie(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := tr.Match("40P01"); !ok {
			b.Fatal("expected hit")
		}
	}
}

func BenchmarkMatch_Miss(b *testing.B) {
	tr := benchTrie(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := tr.Match("XX000"); ok {
			b.Fatal("expected miss")
		}
	}
}
