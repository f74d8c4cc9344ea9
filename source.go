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

package pgstate

import "dirpx.dev/pgstate/sqlstate"

// FieldID names a diagnostic field of a failed result. The values follow the
// field identifiers of the PostgreSQL frontend/backend protocol error
// response.
type FieldID byte

const (
	// FieldSQLState is the five-character status code field.
	FieldSQLState FieldID = 'C'

	// FieldSeverity is the severity tag (ERROR, FATAL, PANIC, ...).
	FieldSeverity FieldID = 'S'

	// FieldDetail is the optional secondary message.
	FieldDetail FieldID = 'D'

	// FieldHint is the optional suggestion field.
	FieldHint FieldID = 'H'
)

// Source provides the diagnostics of an already-failed operation. It is the
// seam to the connection/execution layer: implementations wrap a driver
// result or connection handle. Both methods are synchronous reads of
// already-available values; nothing here blocks or performs I/O.
type Source interface {
	// ErrorMessage returns the short message, or the verbose variant when
	// verbose is true.
	ErrorMessage(verbose bool) string

	// ErrorField returns the named diagnostic field. Absence (ok == false)
	// is a valid outcome — the server does not attach every field to every
	// failure.
	ErrorField(f FieldID) (value string, ok bool)
}

// ResultFromSource builds a ResultError from the diagnostics of a failed
// result.
//
// The short message is always captured; the verbose message only when
// requested, so "not requested" stays distinguishable from "empty". The
// status code is read from the SQLSTATE diagnostic field; when the server
// attached none, the sqlstate.Unset placeholder is classified instead —
// construction never fails, whatever the source reports.
func ResultFromSource(src Source, verbose bool) *ResultError {
	msg := src.ErrorMessage(false)

	raw, ok := src.ErrorField(FieldSQLState)
	if !ok {
		raw = sqlstate.Unset
	}

	opts := make([]Option, 0, 1)
	if verbose {
		opts = append(opts, WithVerbose(src.ErrorMessage(true)))
	}
	return NewResultError(raw, msg, opts...)
}
