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

// Option configures a ResultError at construction time. Options run inside
// the constructor, before the value is published; ResultError stays immutable
// once constructed.
type Option func(*ResultError)

// WithVerbose captures the verbose message alongside the short one. Passing
// an empty string still marks the verbose message as captured — absence and
// emptiness are distinct states.
func WithVerbose(verbose string) Option {
	return func(e *ResultError) {
		e.verbose = verbose
		e.hasVerbose = true
	}
}

// WithCause attaches the underlying driver error for errors.Is / errors.As
// chains. A nil err leaves the value unchanged.
func WithCause(err error) Option {
	return func(e *ResultError) {
		if err != nil {
			e.cause = err
		}
	}
}
