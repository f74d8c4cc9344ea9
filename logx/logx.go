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

// Package logx provides zerolog marshaling for pgstate failures, so server
// errors land in logs as structured fields instead of flattened text.
package logx

import (
	"errors"

	"github.com/rs/zerolog"

	"dirpx.dev/pgstate"
)

// failureObject adapts a pgstate.Failure to zerolog's object model.
type failureObject struct {
	f pgstate.Failure
}

// Object wraps a failure for use with zerolog's Object/EmbedObject:
//
//	log.Error().Object("pg", logx.Object(err)).Msg("query failed")
//
// Classified result errors carry their SQLSTATE identities as separate
// fields; the debug-only verbose message is logged when captured.
func Object(f pgstate.Failure) zerolog.LogObjectMarshaler {
	return failureObject{f: f}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (o failureObject) MarshalZerologObject(e *zerolog.Event) {
	if o.f == nil {
		return
	}
	e.Str("message", o.f.Error())
	e.Bool("server_sourced", o.f.ServerSourced())

	re, ok := o.f.(*pgstate.ResultError)
	if !ok {
		return
	}
	e.Str("sqlstate", re.SQLState())
	e.Str("class", string(re.ErrorClass()))
	e.Str("condition", re.Name())
	if v, captured := re.VerboseMessage(); captured {
		e.Str("verbose", v)
	}
	if cause := errors.Unwrap(re); cause != nil {
		e.AnErr("cause", cause)
	}
}

// Err logs an arbitrary error: failures from this module are expanded into
// structured fields under the given key, anything else falls back to
// zerolog's plain error field.
func Err(e *zerolog.Event, key string, err error) *zerolog.Event {
	var f pgstate.Failure
	if errors.As(err, &f) {
		return e.Object(key, Object(f))
	}
	return e.AnErr(key, err)
}
