/*
   Copyright 2025 The dispatchx Authors

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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of a dispatchx error code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every framework error MUST
// report a non-empty code.
type Code string

// MinLength and MaxLength define the allowed length range for a canonical
// dispatchx code.
//
// They are separate constants so that validation errors, tests, and other
// packages mirroring the same constraints can reference them.
const (
	// MinLength is the minimum length for a valid code.
	// At least 3 characters, so that ultra-short and ambiguous identifiers
	// like "a" or "x1" are never accepted.
	MinLength = 3

	// MaxLength is the maximum length for a valid code.
	// 64 characters comfortably holds descriptive registry entries like
	// "custom_function_complete_success" while still preventing unbounded
	// or accidental long strings.
	MaxLength = 64
)

const (
	// codeFmt is the canonical regular expression used to validate codes.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{2,63} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; the quantifier {2,63} makes the
	//	                  total length 3..64 characters (1 + 2..63);
	//	$ - end of string;
	//
	// IMPORTANT: the numeric range {2,63} is tied to MinLength / MaxLength
	// above. If you change MinLength / MaxLength, adjust this pattern as well.
	codeFmt = `^[a-z][a-z0-9_]{2,63}$`
)

var (
	// codeRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical dispatchx code.
	//
	// Precompiled so that repeated validations (e.g. in config decoding or
	// at dispatch boundaries) do not pay the compilation cost over and over.
	//
	// Examples of valid codes:
	//   - "authorization"
	//   - "multiple_listener"
	//   - "receiver_multiple_ack"
	//
	// Examples of invalid codes:
	//   - "Authorization"       (uppercase)
	//   - "multiple-listener"   (dash instead of underscore)
	//   - "x"                   (too short)
	//   - "1unknown"            (does not start with a letter)
	codeRe = regexp.MustCompile(codeFmt)
)

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a dispatchx code.
	//
	// A dedicated sentinel makes it easy for callers and tests to detect
	// "this is about code format" vs "this is some other error".
	ErrCodeInvalid = errors.New("dxerrors: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is considered "not provided" and never
// identifies a registered framework failure. Callers that require a
// non-empty, canonical code should explicitly call Validate.
var Empty Code = ""

// Parse takes a user-provided string, normalizes it and validates its shape.
// On success it returns a canonical Code value.
//
// Parse does NOT require the code to be registered — transport adapters may
// carry codes minted by other dispatchx versions. Use IsRegistered to check
// membership in this build's registry.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code has the canonical shape.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	// Copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid code.
func validate(s string) error {
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
