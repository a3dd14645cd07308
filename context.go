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
	_ apis.CodedError    = (*ContextMissingPropertyError)(nil)
	_ apis.PropertyError = (*ContextMissingPropertyError)(nil)
	_ apis.CodedError    = (*AssistantMissingPropertyError)(nil)
)

// ContextMissingPropertyError reports that a required field is absent from
// the per-invocation context handed to a listener.
type ContextMissingPropertyError struct {
	missingProperty string
	message         string
}

// NewContextMissingPropertyError constructs the variant. missingProperty
// MUST name the exact context key that was absent; message describes the
// consequence for the caller.
func NewContextMissingPropertyError(missingProperty, message string) *ContextMissingPropertyError {
	return &ContextMissingPropertyError{missingProperty: missingProperty, message: message}
}

func (e *ContextMissingPropertyError) Error() string {
	return format(code.ContextMissingProperty, e.message)
}

// ErrorCode always reports code.ContextMissingProperty.
func (e *ContextMissingPropertyError) ErrorCode() string {
	return code.ContextMissingProperty.String()
}

// Message returns the raw failure description without the code prefix.
func (e *ContextMissingPropertyError) Message() string { return e.message }

// MissingProperty returns the exact name of the absent context key.
func (e *ContextMissingPropertyError) MissingProperty() string { return e.missingProperty }

// AssistantMissingPropertyError reports that an assistant thread context
// lacks a property the assistant handlers rely on.
type AssistantMissingPropertyError struct {
	message string
}

// NewAssistantMissingPropertyError constructs the variant.
func NewAssistantMissingPropertyError(message string) *AssistantMissingPropertyError {
	return &AssistantMissingPropertyError{message: message}
}

func (e *AssistantMissingPropertyError) Error() string {
	return format(code.AssistantMissingProperty, e.message)
}

// ErrorCode always reports code.AssistantMissingProperty.
func (e *AssistantMissingPropertyError) ErrorCode() string {
	return code.AssistantMissingProperty.String()
}

// Message returns the raw failure description without the code prefix.
func (e *AssistantMissingPropertyError) Message() string { return e.message }
