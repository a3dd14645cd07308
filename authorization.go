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
	_ apis.CodedError    = (*AuthorizationError)(nil)
	_ apis.OriginalError = (*AuthorizationError)(nil)
)

// AuthorizationError reports a failure that occurred while resolving
// authorization/credentials for an incoming event. It retains the underlying
// failure unmodified for inspection by the consumer.
type AuthorizationError struct {
	message  string
	original error
}

// NewAuthorizationError constructs the variant. original is the failure
// raised by the authorize function; ownership of the reference transfers to
// the new instance.
func NewAuthorizationError(message string, original error) *AuthorizationError {
	return &AuthorizationError{message: message, original: original}
}

func (e *AuthorizationError) Error() string { return format(code.Authorization, e.message) }

// ErrorCode always reports code.Authorization.
func (e *AuthorizationError) ErrorCode() string { return code.Authorization.String() }

// Message returns the raw failure description without the code prefix.
func (e *AuthorizationError) Message() string { return e.message }

// Original returns the causing failure exactly as it was supplied.
func (e *AuthorizationError) Original() error { return e.original }

// Unwrap exposes the cause to errors.Is / errors.As chains.
func (e *AuthorizationError) Unwrap() error { return e.original }
