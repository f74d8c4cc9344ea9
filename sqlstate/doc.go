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

// Package sqlstate provides the registry of PostgreSQL SQLSTATE identifiers
// and the classifier that resolves raw server-reported codes into them.
//
// A SQLSTATE is the five-character status code the server attaches to every
// failed operation. The first two characters form the *class* (a coarse
// grouping such as "42" — syntax error or access rule violation), the full
// five characters form the *code* (a specific condition such as "42601" —
// syntax error). Both are given distinct, comparable identities here:
//
//   - Class — two-character grouping, e.g. sqlstate.ClassDataException;
//   - Code  — five-character condition, e.g. sqlstate.SyntaxError.
//
// The registry is generated from the errcodes appendix of the PostgreSQL
// documentation and is immutable after package initialization; every lookup
// is a pure read and safe for unsynchronized concurrent use.
//
// Classification never fails: a code the registry does not know (the server's
// code list evolves faster than any client) resolves to the UnknownClass /
// UnknownCode sentinel pair instead of an error.
package sqlstate
