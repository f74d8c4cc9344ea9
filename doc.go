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

// Package pgstate models failures reported by (or detected around) a
// PostgreSQL server as a closed set of typed error values.
//
// The variants are:
//
//   - ConnError         — server-reported connection failure;
//   - ConnStringError   — malformed connection string or parameters;
//   - ClientConnError   — wrapper-detected connection misuse (no server text);
//   - ClientResultError — wrapper-detected result misuse (no server text);
//   - ResultError       — server-reported statement failure, carrying the
//     SQLSTATE identities resolved through the sqlstate package.
//
// Every variant owns its message text and is immutable after construction.
// Error() renders the user-facing text: server-sourced messages are
// documented to end with one line terminator, which is stripped exactly once;
// client-detected messages are printed as-is. GoString() (the %#v verb)
// renders the debug form: the resolved condition name plus the raw messages,
// shaped like the constructor call that would rebuild the value.
//
// Matching works at three granularities over wrapped error chains:
//
//	var re *pgstate.ResultError
//	errors.As(err, &re)                                  // any result failure
//	pgstate.BelongsToClass(err, sqlstate.ClassDataException) // any class-22 failure
//	code, _ := pgstate.ErrorCode(err)
//	code == sqlstate.UniqueViolation                     // exactly this condition
package pgstate
