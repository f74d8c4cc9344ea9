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

package sqlstate

import "sort"

// UnknownName is the display name resolved for the unknown sentinel pair and
// for any code absent from the registry.
const UnknownName = "UnknownSQLState"

// allCodes and allClasses are the enumeration snapshots, sorted once during
// package initialization. They are never mutated afterward; the accessor
// functions hand out copies so callers cannot reorder or truncate the
// registry view of other callers.
var (
	allCodes   = sortedCodes()
	allClasses = sortedClasses()
)

// Classify resolves a raw server-reported status code into registered Class
// and Code identities.
//
// The input may be any string: classification never fails. The registered
// pair is returned only for a full five-character match against the registry;
// everything else — malformed input, a registered class with an unregistered
// condition, a code the appendix has not published yet — resolves to the
// (UnknownClass, UnknownCode) sentinel pair. An unrecognized code is a
// normal, expected outcome, not an error.
func Classify(raw string) (Class, Code) {
	s := Normalize(raw)
	if len(s) < ClassLength {
		return UnknownClass, UnknownCode
	}
	cl := Class(s[:ClassLength])
	if _, ok := classNames[cl]; !ok {
		return UnknownClass, UnknownCode
	}
	c := Code(s)
	if _, ok := codeNames[c]; !ok {
		return UnknownClass, UnknownCode
	}
	return cl, c
}

// Lookup reports the registered Code identity for a raw string, if any.
// Unlike Classify it does not substitute sentinels; the second return value
// distinguishes hit from miss.
func Lookup(raw string) (Code, bool) {
	c := Code(Normalize(raw))
	_, ok := codeNames[c]
	if !ok {
		return UnknownCode, false
	}
	return c, true
}

// IsRegistered reports whether the code is present in the registry.
func IsRegistered(c Code) bool {
	_, ok := codeNames[c]
	return ok
}

// IsRegisteredClass reports whether the class is present in the registry.
func IsRegisteredClass(c Class) bool {
	_, ok := classNames[c]
	return ok
}

// Name returns the canonical condition name for a registered code,
// e.g. "SyntaxError" for "42601". Codes absent from the registry — including
// the UnknownCode sentinel — resolve to UnknownName, never to a missing-key
// failure.
func Name(c Code) string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return UnknownName
}

// ClassName returns the section name for a registered class,
// e.g. "SyntaxErrorOrAccessRuleViolation" for "42". Unregistered classes
// resolve to UnknownName.
func ClassName(c Class) string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return UnknownName
}

// Codes returns every registered code in lexical order. The returned slice
// is a fresh copy on each call.
func Codes() []Code {
	out := make([]Code, len(allCodes))
	copy(out, allCodes)
	return out
}

// Classes returns every registered class in lexical order. The returned
// slice is a fresh copy on each call.
func Classes() []Class {
	out := make([]Class, len(allClasses))
	copy(out, allClasses)
	return out
}

// CodesOf returns the registered codes belonging to the given class, in
// lexical order.
func CodesOf(cl Class) []Code {
	var out []Code
	for _, c := range allCodes {
		if c.Class() == cl {
			out = append(out, c)
		}
	}
	return out
}

func sortedCodes() []Code {
	out := make([]Code, 0, len(codeNames))
	for c := range codeNames {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedClasses() []Class {
	out := make([]Class, 0, len(classNames))
	for c := range classNames {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
