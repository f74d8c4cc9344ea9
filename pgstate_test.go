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

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/pgstate/sqlstate"
)

func TestResultError_KnownCode(t *testing.T) {
	e := NewResultError("42601", "ERROR: syntax error at or near \"SELORCT\"\n")

	if e.ErrorClass() != sqlstate.ClassSyntaxErrorOrAccessRuleViolation {
		t.Fatalf("class = %q", e.ErrorClass())
	}
	if e.ErrorCode() != sqlstate.SyntaxError {
		t.Fatalf("code = %q", e.ErrorCode())
	}
	if e.Name() != "SyntaxError" {
		t.Fatalf("name = %q", e.Name())
	}
	want := `ERROR: syntax error at or near "SELORCT"`
	if e.Error() != want {
		t.Fatalf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestResultError_UnknownCode(t *testing.T) {
	e := NewResultError("ZZ000", "ERROR: something new\n")
	if e.ErrorClass() != sqlstate.UnknownClass || e.ErrorCode() != sqlstate.UnknownCode {
		t.Fatalf("sentinels expected, got (%q, %q)", e.ErrorClass(), e.ErrorCode())
	}
	if e.Name() != sqlstate.UnknownName {
		t.Fatalf("name = %q", e.Name())
	}
	if !strings.Contains(fmt.Sprintf("%#v", e), sqlstate.UnknownName) {
		t.Fatalf("debug render must use the unresolved label: %#v", e)
	}
}

func TestTerminatorStripping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single newline", "boom\n", "boom"},
		{"crlf", "boom\r\n", "boom"},
		{"exactly one stripped", "boom\n\n", "boom\n"},
		{"no terminator", "boom", "boom"},
		{"terminator only", "\n", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewConnError(tt.in)
			if got := e.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientVariants_MessageAsIs(t *testing.T) {
	// wrapper-produced text carries no server terminator; nothing is stripped
	e := NewClientConnError("connection already closed\n")
	if e.Error() != "connection already closed\n" {
		t.Fatalf("client message must not be trimmed: %q", e.Error())
	}
	if e.ServerSourced() {
		t.Fatal("client variant must not be server sourced")
	}
	r := NewClientResultError("row not fetched")
	if r.Error() != "row not fetched" {
		t.Fatalf("Error() = %q", r.Error())
	}
}

func TestVerbosePrecedence(t *testing.T) {
	e := NewResultError("42601", "short\n", WithVerbose("long and detailed\n"))
	if e.Error() != "long and detailed" {
		t.Fatalf("verbose must win: %q", e.Error())
	}
	if v, ok := e.VerboseMessage(); !ok || v != "long and detailed\n" {
		t.Fatalf("VerboseMessage() = (%q, %v)", v, ok)
	}
}

func TestVerboseAbsentVsEmpty(t *testing.T) {
	absent := NewResultError("42601", "short\n")
	if _, ok := absent.VerboseMessage(); ok {
		t.Fatal("verbose must be absent when not requested")
	}
	if absent.Error() != "short" {
		t.Fatalf("fallback to short failed: %q", absent.Error())
	}

	empty := NewResultError("42601", "short\n", WithVerbose(""))
	if v, ok := empty.VerboseMessage(); !ok || v != "" {
		t.Fatalf("captured-empty verbose = (%q, %v)", v, ok)
	}

	// the two states must render differently in debug form
	da, de := fmt.Sprintf("%#v", absent), fmt.Sprintf("%#v", empty)
	if da == de {
		t.Fatalf("debug render cannot distinguish absent from empty: %q", da)
	}
	if !strings.Contains(de, "WithVerbose") || strings.Contains(da, "WithVerbose") {
		t.Fatalf("absent=%q empty=%q", da, de)
	}
}

func TestGoString_Shape(t *testing.T) {
	e := NewResultError("42601", "ERROR: nope\n")
	got := fmt.Sprintf("%#v", e)
	want := `pgstate.NewResultError(SyntaxError, "ERROR: nope\n")`
	if got != want {
		t.Fatalf("GoString = %q, want %q", got, want)
	}

	c := NewConnStringError("bad dsn\n")
	if gs := fmt.Sprintf("%#v", c); !strings.Contains(gs, "NewConnStringError") {
		t.Fatalf("GoString = %q", gs)
	}
}

func TestIdentityIndependentOfMessage(t *testing.T) {
	a := NewResultError("23505", "duplicate key value violates unique constraint \"users_email_key\"\n")
	b := NewResultError("23505", "duplicate key value violates unique constraint \"orders_pk\"\n")
	if a.ErrorCode() != b.ErrorCode() || a.ErrorClass() != b.ErrorClass() {
		t.Fatal("same code must yield equal identities")
	}
	if a.Message() == b.Message() {
		t.Fatal("messages must stay independent of identity")
	}
}

func TestBelongsToClass(t *testing.T) {
	e := NewResultError("23505", "dup\n")
	if !e.BelongsToClass(sqlstate.ClassIntegrityConstraintViolation) {
		t.Fatal("class predicate must match")
	}
	if e.BelongsToClass(sqlstate.ClassDataException) {
		t.Fatal("class predicate must not match a different class")
	}
}

func TestChainHelpers(t *testing.T) {
	inner := NewResultError("40P01", "deadlock detected\n")
	wrapped := fmt.Errorf("tx aborted: %w", inner)

	code, ok := ErrorCode(wrapped)
	if !ok || code != sqlstate.DeadlockDetected {
		t.Fatalf("ErrorCode = (%q, %v)", code, ok)
	}
	if !BelongsToClass(wrapped, sqlstate.ClassTransactionRollback) {
		t.Fatal("BelongsToClass over a wrapped chain must match")
	}
	if _, ok := ErrorCode(errors.New("plain")); ok {
		t.Fatal("ErrorCode on a foreign error must miss")
	}
}

func TestWithCause_Unwrap(t *testing.T) {
	root := errors.New("driver says no")
	e := NewResultError("08006", "connection failure\n", WithCause(root))
	if !errors.Is(e, root) {
		t.Fatal("errors.Is through cause failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
}

type fakeSource struct {
	short   string
	verbose string
	fields  map[FieldID]string
}

func (f *fakeSource) ErrorMessage(verbose bool) string {
	if verbose {
		return f.verbose
	}
	return f.short
}

func (f *fakeSource) ErrorField(id FieldID) (string, bool) {
	v, ok := f.fields[id]
	return v, ok
}

func TestResultFromSource(t *testing.T) {
	src := &fakeSource{
		short:   "ERROR: division by zero\n",
		verbose: "ERROR: division by zero\nLINE 1: select 1/0\n",
		fields:  map[FieldID]string{FieldSQLState: "22012"},
	}

	e := ResultFromSource(src, false)
	if e.ErrorCode() != sqlstate.DivisionByZero {
		t.Fatalf("code = %q", e.ErrorCode())
	}
	if _, ok := e.VerboseMessage(); ok {
		t.Fatal("verbose must not be fetched when not requested")
	}

	v := ResultFromSource(src, true)
	if msg, ok := v.VerboseMessage(); !ok || msg != src.verbose {
		t.Fatalf("verbose = (%q, %v)", msg, ok)
	}
}

func TestResultFromSource_FieldAbsent(t *testing.T) {
	src := &fakeSource{short: "ERROR: weird\n", fields: nil}

	// absence of the SQLSTATE field is a normal outcome; construction must
	// proceed via the placeholder and land on the sentinels
	e := ResultFromSource(src, false)
	if e.ErrorClass() != sqlstate.UnknownClass || e.ErrorCode() != sqlstate.UnknownCode {
		t.Fatalf("placeholder must classify to sentinels, got (%q, %q)", e.ErrorClass(), e.ErrorCode())
	}
	if e.Error() != "ERROR: weird" {
		t.Fatalf("Error() = %q", e.Error())
	}
}

func TestErrorNeverExposesTypeNameOrCode(t *testing.T) {
	failures := []Failure{
		NewConnError("conn broke\n"),
		NewConnStringError("bad dsn\n"),
		NewClientConnError("closed"),
		NewClientResultError("no row"),
		NewResultError("42601", "syntax\n"),
	}
	for _, f := range failures {
		s := f.Error()
		if strings.Contains(s, "pgstate.") {
			t.Fatalf("user-facing text leaks type name: %q", s)
		}
		if strings.HasSuffix(s, "\n") && f.ServerSourced() {
			t.Fatalf("server-sourced text keeps trailing terminator: %q", s)
		}
	}
}
