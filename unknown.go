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

package dxerrors

import (
	"dispatchx.dev/dxerrors/apis"
	"dispatchx.dev/dxerrors/code"
)

var (
	_ apis.CodedError    = (*UnknownError)(nil)
	_ apis.OriginalError = (*UnknownError)(nil)
)

// UnknownError wraps a failure the framework did not itself classify.
//
// It is produced exclusively by AsCoded for foreign failures; a value that
// already satisfies the coded-error contract must never end up inside one.
// The wrapped failure is retained unmodified, so the consumer can always
// recover exactly what was raised.
type UnknownError struct {
	message  string
	original error
}

// NewUnknownError constructs the fallback variant around a foreign failure.
// The message is taken from original's Error() text, so nothing the original
// reported is lost even for consumers that only look at the message.
func NewUnknownError(original error) *UnknownError {
	msg := ""
	if original != nil {
		msg = original.Error()
	}
	return &UnknownError{message: msg, original: original}
}

func (e *UnknownError) Error() string { return format(code.Unknown, e.message) }

// ErrorCode always reports code.Unknown.
func (e *UnknownError) ErrorCode() string { return code.Unknown.String() }

// Message returns the wrapped failure's own message.
func (e *UnknownError) Message() string { return e.message }

// Original returns the wrapped failure exactly as it was supplied.
func (e *UnknownError) Original() error { return e.original }

// Unwrap exposes the wrapped failure to errors.Is / errors.As chains.
func (e *UnknownError) Unwrap() error { return e.original }
