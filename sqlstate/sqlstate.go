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

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Class is the two-character SQLSTATE class identity.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which axis of the taxonomy they expect and to avoid
// accidental mixing of raw server strings with resolved identities.
type Class string

// Code is the five-character SQLSTATE code identity.
//
// Every registered code belongs to exactly one registered class: the class is
// always the first two characters of the code.
type Code string

// ClassLength and CodeLength are the fixed lengths the SQL standard assigns
// to the two identifier forms. They are separate constants so validation
// errors, tests and other packages can refer to the same values.
const (
	// ClassLength is the length of a SQLSTATE class identifier.
	ClassLength = 2

	// CodeLength is the length of a full SQLSTATE code.
	CodeLength = 5
)

// Sentinel identities used when classification cannot resolve a registered
// pair. They deliberately use '?' — a character outside the SQLSTATE
// alphabet — so they can never collide with a code the server may add in a
// future release.
const (
	// UnknownClass is the fallback class identity for unrecognized or
	// malformed status codes.
	UnknownClass Class = "??"

	// UnknownCode is the fallback code identity for unrecognized or
	// malformed status codes.
	UnknownCode Code = "?????"

	// Unset is the placeholder substituted for the status code when the
	// server provided no SQLSTATE diagnostic field at all. It classifies to
	// the unknown sentinel pair; absence of the field is a normal outcome,
	// not an error.
	Unset = "?????"
)

var (
	// ErrInvalidCode is returned when a value cannot be parsed as a
	// five-character SQLSTATE code.
	ErrInvalidCode = errors.New("sqlstate: invalid code")

	// ErrInvalidClass is returned when a value cannot be parsed as a
	// two-character SQLSTATE class.
	ErrInvalidClass = errors.New("sqlstate: invalid class")
)

// Ensure both identity types implement encoding.TextMarshaler /
// encoding.TextUnmarshaler so they can be embedded into larger API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
	_ encoding.TextMarshaler   = (*Class)(nil)
	_ encoding.TextUnmarshaler = (*Class)(nil)
)

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical SQLSTATE form.
//
// It only performs obvious, non-lossy transformations:
//
//   - trims surrounding spaces;
//   - uppercases the value (the SQLSTATE alphabet is digits and uppercase
//     ASCII letters; drivers occasionally report lowercased codes).
//
// It does NOT guarantee that the result is valid — callers should still call
// Parse/Validate, and Classify accepts arbitrary input anyway.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Parse normalizes and validates a raw string as a SQLSTATE code.
//
// Parse does not require the code to be registered — the server may report
// codes the registry has not caught up with yet. Use Classify to resolve a
// registered identity with sentinel fallback.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if !validCode(s) {
		return UnknownCode, ErrInvalidCode
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseClass normalizes and validates a raw string as a SQLSTATE class.
func ParseClass(s string) (Class, error) {
	s = Normalize(s)
	if !validClass(s) {
		return UnknownClass, ErrInvalidClass
	}
	return Class(s), nil
}

// Validate checks whether the code is structurally valid: five characters of
// the SQLSTATE alphabet, or the UnknownCode sentinel (which is a legitimate
// classification result and must survive re-serialization).
func (c Code) Validate() error {
	if c == UnknownCode {
		return nil
	}
	if !validCode(string(c)) {
		return ErrInvalidCode
	}
	return nil
}

// Validate checks whether the class is structurally valid, with the same
// sentinel allowance as Code.Validate.
func (c Class) Validate() error {
	if c == UnknownClass {
		return nil
	}
	if !validClass(string(c)) {
		return ErrInvalidClass
	}
	return nil
}

// String returns the canonical five-character representation of the code.
func (c Code) String() string { return string(c) }

// String returns the canonical two-character representation of the class.
func (c Class) String() string { return string(c) }

// Class returns the class the code belongs to: its first two characters.
// The UnknownCode sentinel maps to UnknownClass; so does anything too short
// to carry a class prefix.
func (c Code) Class() Class {
	if c == UnknownCode || len(c) < ClassLength {
		return UnknownClass
	}
	return Class(c[:ClassLength])
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(text []byte) error {
	parsed, err := ParseClass(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validCode reports whether s is exactly CodeLength characters of the
// SQLSTATE alphabet.
func validCode(s string) bool {
	return len(s) == CodeLength && validAlphabet(s)
}

// validClass reports whether s is exactly ClassLength characters of the
// SQLSTATE alphabet.
func validClass(s string) bool {
	return len(s) == ClassLength && validAlphabet(s)
}

// validAlphabet reports whether every character of s belongs to the SQLSTATE
// alphabet: digits and uppercase ASCII letters.
func validAlphabet(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}
