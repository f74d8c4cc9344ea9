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

	"dirpx.dev/pgstate/sqlstate"
)

// Failure is the capability shared by every variant in this package.
//
// It exists so adapters (HTTP, gRPC, logging) can handle the closed set
// uniformly; it is not an extension point — the unexported method restricts
// implementations to this package.
type Failure interface {
	error
	fmt.GoStringer

	// Message returns the raw message exactly as captured, including any
	// trailing line terminator. Error() is the rendered form.
	Message() string

	// ServerSourced reports whether the message text came from the server
	// (and therefore carries the documented trailing line terminator) or was
	// produced by the wrapper itself.
	ServerSourced() bool

	failure()
}

// Variant interface checks.
var (
	_ Failure = (*ConnError)(nil)
	_ Failure = (*ConnStringError)(nil)
	_ Failure = (*ClientConnError)(nil)
	_ Failure = (*ClientResultError)(nil)
	_ Failure = (*ResultError)(nil)
)

// ConnError is a connection-level failure reported by the server, e.g. the
// backend closed the channel or authentication was rejected outside of
// statement execution. It carries no SQLSTATE.
type ConnError struct {
	msg string
}

// NewConnError constructs a ConnError from the server-reported message.
func NewConnError(msg string) *ConnError { return &ConnError{msg: msg} }

// Error returns the user-facing text: the server message with its trailing
// line terminator stripped exactly once.
func (e *ConnError) Error() string { return trimTerminator(e.msg) }

// Message returns the raw captured message.
func (e *ConnError) Message() string { return e.msg }

// ServerSourced reports true: the message came from the server.
func (e *ConnError) ServerSourced() bool { return true }

// GoString implements fmt.GoStringer for %#v debug rendering.
func (e *ConnError) GoString() string {
	return fmt.Sprintf("pgstate.NewConnError(%q)", e.msg)
}

func (e *ConnError) failure() {}

// ConnStringError is reported when the connection string or connection
// parameters could not be parsed by the server library.
type ConnStringError struct {
	msg string
}

// NewConnStringError constructs a ConnStringError from the reported message.
func NewConnStringError(msg string) *ConnStringError { return &ConnStringError{msg: msg} }

// Error returns the user-facing text with the trailing terminator stripped.
func (e *ConnStringError) Error() string { return trimTerminator(e.msg) }

// Message returns the raw captured message.
func (e *ConnStringError) Message() string { return e.msg }

// ServerSourced reports true.
func (e *ConnStringError) ServerSourced() bool { return true }

// GoString implements fmt.GoStringer.
func (e *ConnStringError) GoString() string {
	return fmt.Sprintf("pgstate.NewConnStringError(%q)", e.msg)
}

func (e *ConnStringError) failure() {}

// ClientConnError is raised by the wrapper itself when a connection is
// misused — for example, operating on a connection that is already closed.
// There is no server message to relay.
type ClientConnError struct {
	msg string
}

// NewClientConnError constructs a ClientConnError.
func NewClientConnError(msg string) *ClientConnError { return &ClientConnError{msg: msg} }

// Error returns the message as-is: wrapper-produced text carries no
// server-style trailing terminator.
func (e *ClientConnError) Error() string { return e.msg }

// Message returns the raw message.
func (e *ClientConnError) Message() string { return e.msg }

// ServerSourced reports false.
func (e *ClientConnError) ServerSourced() bool { return false }

// GoString implements fmt.GoStringer.
func (e *ClientConnError) GoString() string {
	return fmt.Sprintf("pgstate.NewClientConnError(%q)", e.msg)
}

func (e *ClientConnError) failure() {}

// ClientResultError is raised by the wrapper when a result is misused — for
// example, reading a field from a row that was never fetched.
type ClientResultError struct {
	msg string
}

// NewClientResultError constructs a ClientResultError.
func NewClientResultError(msg string) *ClientResultError { return &ClientResultError{msg: msg} }

// Error returns the message as-is.
func (e *ClientResultError) Error() string { return e.msg }

// Message returns the raw message.
func (e *ClientResultError) Message() string { return e.msg }

// ServerSourced reports false.
func (e *ClientResultError) ServerSourced() bool { return false }

// GoString implements fmt.GoStringer.
func (e *ClientResultError) GoString() string {
	return fmt.Sprintf("pgstate.NewClientResultError(%q)", e.msg)
}

func (e *ClientResultError) failure() {}

// ResultError is a statement-level failure reported by the server. It
// carries the Class and Code identities resolved against the sqlstate
// registry (possibly the unknown sentinels), the short message, and — when
// requested at construction time — the verbose message.
//
// The value is immutable after construction; all fields are reached through
// accessors. "Verbose absent" and "verbose empty" are distinct states.
type ResultError struct {
	class sqlstate.Class
	code  sqlstate.Code

	msg        string
	verbose    string
	hasVerbose bool

	cause error
}

// NewResultError constructs a ResultError from a raw status-code string and
// the short server message. The raw code is classified against the registry;
// an unrecognized or malformed code resolves to the unknown sentinels and is
// never an error — reporting a secondary failure while reporting a primary
// one is explicitly not done here.
func NewResultError(rawCode, msg string, opts ...Option) *ResultError {
	class, code := sqlstate.Classify(rawCode)
	e := &ResultError{class: class, code: code, msg: msg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Error returns the user-facing text: the verbose message when captured,
// otherwise the short message, with the trailing line terminator stripped
// exactly once. The type name and the raw code never appear in this form.
func (e *ResultError) Error() string {
	if e.hasVerbose {
		return trimTerminator(e.verbose)
	}
	return trimTerminator(e.msg)
}

// Message returns the raw short message.
func (e *ResultError) Message() string { return e.msg }

// VerboseMessage returns the verbose message and whether one was captured.
// A captured-but-empty verbose message reports ("", true).
func (e *ResultError) VerboseMessage() (string, bool) { return e.verbose, e.hasVerbose }

// ServerSourced reports true.
func (e *ResultError) ServerSourced() bool { return true }

// ErrorClass returns the resolved class identity.
func (e *ResultError) ErrorClass() sqlstate.Class { return e.class }

// ErrorCode returns the resolved code identity.
func (e *ResultError) ErrorCode() sqlstate.Code { return e.code }

// SQLState returns the five-character form of the resolved code. The method
// name follows the convention of PostgreSQL drivers (cf. pgconn), so callers
// holding only an error interface can feature-detect the code.
func (e *ResultError) SQLState() string { return string(e.code) }

// Name returns the display name of the resolved condition, e.g.
// "SyntaxError"; the unknown sentinel renders as sqlstate.UnknownName.
func (e *ResultError) Name() string { return sqlstate.Name(e.code) }

// BelongsToClass reports whether the failure's resolved class equals cl.
func (e *ResultError) BelongsToClass(cl sqlstate.Class) bool { return e.class == cl }

// Unwrap returns the underlying driver error, if one was attached.
func (e *ResultError) Unwrap() error { return e.cause }

// Cause is an explicit alias of Unwrap for callers that prefer the
// interface-based contract over errors.Unwrap.
func (e *ResultError) Cause() error { return e.cause }

// GoString implements fmt.GoStringer. The rendering is shaped like the
// constructor call that would rebuild the value: the resolved condition name
// first, then the raw short message, then the verbose message only when one
// was captured — so absent and empty verbose text stay distinguishable.
func (e *ResultError) GoString() string {
	if e.hasVerbose {
		return fmt.Sprintf("pgstate.NewResultError(%s, %q, pgstate.WithVerbose(%q))",
			e.Name(), e.msg, e.verbose)
	}
	return fmt.Sprintf("pgstate.NewResultError(%s, %q)", e.Name(), e.msg)
}

func (e *ResultError) failure() {}

// ErrorCode reports the resolved code of the first ResultError in err's
// chain. The second return value is false when the chain holds none.
func ErrorCode(err error) (sqlstate.Code, bool) {
	var re *ResultError
	if errors.As(err, &re) {
		return re.ErrorCode(), true
	}
	return sqlstate.UnknownCode, false
}

// ErrorClass reports the resolved class of the first ResultError in err's
// chain, with the same miss semantics as ErrorCode.
func ErrorClass(err error) (sqlstate.Class, bool) {
	var re *ResultError
	if errors.As(err, &re) {
		return re.ErrorClass(), true
	}
	return sqlstate.UnknownClass, false
}

// BelongsToClass reports whether err's chain holds a ResultError whose
// resolved class equals cl. This is the catch-by-class predicate: it matches
// any condition of the class regardless of the specific code.
func BelongsToClass(err error, cl sqlstate.Class) bool {
	got, ok := ErrorClass(err)
	return ok && got == cl
}

// trimTerminator strips exactly one trailing line terminator. Server
// messages are documented to end with one; stripping must not eat blank
// lines that are part of the text.
func trimTerminator(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1]
	}
	return s
}
