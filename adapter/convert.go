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

// Package adapter bridges pgx driver errors into pgstate values and projects
// pgstate values into the transport-friendly apis shapes.
package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"dirpx.dev/pgstate"
	"dirpx.dev/pgstate/apis"
)

// The concrete error type satisfies the apis contracts; adapters and
// transports rely on these.
var (
	_ apis.ClassedError = (*pgstate.ResultError)(nil)
	_ apis.CodedError   = (*pgstate.ResultError)(nil)
	_ apis.CausedError  = (*pgstate.ResultError)(nil)

	// pgconn's own error satisfies the coded contract too, so both sides of
	// the bridge can be matched uniformly.
	_ apis.CodedError = (*pgconn.PgError)(nil)
)

// FromPgconn builds a *pgstate.ResultError from a pgconn server error.
//
// The short message follows the server's own rendering: severity, message,
// one trailing line terminator. When the driver surfaced secondary fields
// (DETAIL, HINT, context, source location) a verbose message is assembled in
// the multi-line style the server uses, so VerboseMessage() reports it as
// captured. The original pgconn error is attached as the cause, so
// errors.As(err, &pgErr) keeps working across the conversion.
func FromPgconn(pgErr *pgconn.PgError) *pgstate.ResultError {
	if pgErr == nil {
		return nil
	}

	short := fmt.Sprintf("%s: %s\n", pgErr.Severity, pgErr.Message)

	opts := []pgstate.Option{pgstate.WithCause(pgErr)}
	if verbose, ok := verboseMessage(pgErr, short); ok {
		opts = append(opts, pgstate.WithVerbose(verbose))
	}

	return pgstate.NewResultError(pgErr.Code, short, opts...)
}

// verboseMessage renders the multi-line form when the error carries any
// secondary diagnostic field. ok is false when the short form already says
// everything.
func verboseMessage(pgErr *pgconn.PgError, short string) (verbose string, ok bool) {
	var b strings.Builder
	b.WriteString(short)

	if pgErr.Detail != "" {
		fmt.Fprintf(&b, "DETAIL:  %s\n", pgErr.Detail)
		ok = true
	}
	if pgErr.Hint != "" {
		fmt.Fprintf(&b, "HINT:  %s\n", pgErr.Hint)
		ok = true
	}
	if pgErr.Where != "" {
		fmt.Fprintf(&b, "CONTEXT:  %s\n", pgErr.Where)
		ok = true
	}
	if pgErr.File != "" {
		fmt.Fprintf(&b, "LOCATION:  %s, %s:%d\n", pgErr.Routine, pgErr.File, pgErr.Line)
		ok = true
	}
	if !ok {
		return "", false
	}
	return b.String(), true
}

// Convert maps a pgx-originated error into this module's closed error model:
//
//   - *pgconn.PgError          -> *pgstate.ResultError (classified);
//   - *pgconn.ParseConfigError -> *pgstate.ConnStringError;
//   - *pgconn.ConnectError     -> *pgstate.ConnError;
//   - anything else            -> returned unchanged.
//
// errors.As is used for matching, so wrapped driver errors convert too. A nil
// err returns nil.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return FromPgconn(pgErr)
	}

	var cfgErr *pgconn.ParseConfigError
	if errors.As(err, &cfgErr) {
		return pgstate.NewConnStringError(cfgErr.Error())
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return pgstate.NewConnError(connErr.Error())
	}

	return err
}

// Diagnostics extracts the structured diagnostic fields of a pgconn error as
// apis details, suitable for attaching to an ErrorView. Returns nil when the
// error carries none.
func Diagnostics(pgErr *pgconn.PgError) []apis.Detail {
	if pgErr == nil {
		return nil
	}

	var ds []apis.Detail
	if pgErr.Detail != "" {
		ds = append(ds, apis.Detail{Type: "detail", Value: pgErr.Detail})
	}
	if pgErr.Hint != "" {
		ds = append(ds, apis.Detail{Type: "hint", Value: pgErr.Hint})
	}
	if pgErr.Position > 0 {
		ds = append(ds, apis.Detail{Type: "position", Value: fmt.Sprintf("%d", pgErr.Position)})
	}
	if pgErr.ConstraintName != "" {
		d := apis.Detail{Type: "constraint", Field: pgErr.ConstraintName}
		if pgErr.TableName != "" || pgErr.SchemaName != "" {
			d.Info = map[string]string{}
			if pgErr.SchemaName != "" {
				d.Info["schema"] = pgErr.SchemaName
			}
			if pgErr.TableName != "" {
				d.Info["table"] = pgErr.TableName
			}
		}
		ds = append(ds, d)
	}
	if pgErr.ColumnName != "" {
		ds = append(ds, apis.Detail{Type: "column", Field: pgErr.ColumnName})
	}
	return ds
}

// ToDescriptor converts a classified error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the SQLSTATE identities and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *pgstate.ResultError, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Class:      string(e.ErrorClass()),
		Code:       e.SQLState(),
		Condition:  e.Name(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Error(),
	}
}

// ToView converts a classified error into a public ErrorView. This function
// performs no automatic redaction or filtering; it exposes exactly what the
// error instance contains.
//
// details is optional extra diagnostics, typically the output of Diagnostics
// for driver-originated errors. It is up to the caller or API layer to decide
// whether to redact or filter sensitive fields.
func ToView(e *pgstate.ResultError, details ...apis.Detail) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Class:     string(e.ErrorClass()),
		Code:      e.SQLState(),
		Condition: e.Name(),
		Message:   e.Error(),
	}
	if len(details) > 0 {
		v.Details = details
	}
	return v
}
