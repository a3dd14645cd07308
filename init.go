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

// Initialization variants.
//
// These are fatal, surfaced once at startup, and never retried. Each binds
// exactly one registry code and carries nothing beyond a message.

var (
	_ apis.CodedError = (*AppInitializationError)(nil)
	_ apis.CodedError = (*AssistantInitializationError)(nil)
	_ apis.CodedError = (*CustomRouteInitializationError)(nil)
	_ apis.CodedError = (*WorkflowStepInitializationError)(nil)
	_ apis.CodedError = (*CustomFunctionInitializationError)(nil)
	_ apis.CodedError = (*InvalidCustomPropertyError)(nil)
)

// AppInitializationError reports that the top-level App could not be
// assembled from the supplied configuration.
type AppInitializationError struct {
	message string
}

// NewAppInitializationError constructs the variant with a description of
// what prevented initialization.
func NewAppInitializationError(message string) *AppInitializationError {
	return &AppInitializationError{message: message}
}

func (e *AppInitializationError) Error() string { return format(code.AppInitialization, e.message) }

// ErrorCode always reports code.AppInitialization.
func (e *AppInitializationError) ErrorCode() string { return code.AppInitialization.String() }

// Message returns the raw failure description without the code prefix.
func (e *AppInitializationError) Message() string { return e.message }

// AssistantInitializationError reports that an assistant middleware bundle
// was configured without the handlers it requires.
type AssistantInitializationError struct {
	message string
}

// NewAssistantInitializationError constructs the variant.
func NewAssistantInitializationError(message string) *AssistantInitializationError {
	return &AssistantInitializationError{message: message}
}

func (e *AssistantInitializationError) Error() string {
	return format(code.AssistantInitialization, e.message)
}

// ErrorCode always reports code.AssistantInitialization.
func (e *AssistantInitializationError) ErrorCode() string {
	return code.AssistantInitialization.String()
}

// Message returns the raw failure description without the code prefix.
func (e *AssistantInitializationError) Message() string { return e.message }

// CustomRouteInitializationError reports an incomplete user-supplied HTTP
// route definition (missing path, method, or handler).
type CustomRouteInitializationError struct {
	message string
}

// NewCustomRouteInitializationError constructs the variant.
func NewCustomRouteInitializationError(message string) *CustomRouteInitializationError {
	return &CustomRouteInitializationError{message: message}
}

func (e *CustomRouteInitializationError) Error() string {
	return format(code.CustomRouteInitialization, e.message)
}

// ErrorCode always reports code.CustomRouteInitialization.
func (e *CustomRouteInitializationError) ErrorCode() string {
	return code.CustomRouteInitialization.String()
}

// Message returns the raw failure description without the code prefix.
func (e *CustomRouteInitializationError) Message() string { return e.message }

// WorkflowStepInitializationError reports a workflow step registered without
// a callback for one of its lifecycle phases.
//
// Deprecated: workflow steps are scheduled for removal. The variant is kept
// so existing handlers that branch on its code keep working until then.
type WorkflowStepInitializationError struct {
	message string
}

// NewWorkflowStepInitializationError constructs the variant.
//
// Deprecated: workflow steps are scheduled for removal.
func NewWorkflowStepInitializationError(message string) *WorkflowStepInitializationError {
	return &WorkflowStepInitializationError{message: message}
}

func (e *WorkflowStepInitializationError) Error() string {
	return format(code.WorkflowStepInitialization, e.message)
}

// ErrorCode always reports code.WorkflowStepInitialization.
func (e *WorkflowStepInitializationError) ErrorCode() string {
	return code.WorkflowStepInitialization.String()
}

// Message returns the raw failure description without the code prefix.
func (e *WorkflowStepInitializationError) Message() string { return e.message }

// CustomFunctionInitializationError reports a custom function registered
// with an invalid callback identifier or handler set.
type CustomFunctionInitializationError struct {
	message string
}

// NewCustomFunctionInitializationError constructs the variant.
func NewCustomFunctionInitializationError(message string) *CustomFunctionInitializationError {
	return &CustomFunctionInitializationError{message: message}
}

func (e *CustomFunctionInitializationError) Error() string {
	return format(code.CustomFunctionInitialization, e.message)
}

// ErrorCode always reports code.CustomFunctionInitialization.
func (e *CustomFunctionInitializationError) ErrorCode() string {
	return code.CustomFunctionInitialization.String()
}

// Message returns the raw failure description without the code prefix.
func (e *CustomFunctionInitializationError) Message() string { return e.message }

// InvalidCustomPropertyError reports a rejected user-supplied custom context
// property.
//
// NOTE: this variant reports code.InvalidCustomProperty, which aliases
// code.AppInitialization — the upstream registry defined it with the shared
// value and handlers branch on that string, so the binding is preserved
// as observed.
type InvalidCustomPropertyError struct {
	message string
}

// NewInvalidCustomPropertyError constructs the variant.
func NewInvalidCustomPropertyError(message string) *InvalidCustomPropertyError {
	return &InvalidCustomPropertyError{message: message}
}

func (e *InvalidCustomPropertyError) Error() string {
	return format(code.InvalidCustomProperty, e.message)
}

// ErrorCode reports code.InvalidCustomProperty (the AppInitialization value).
func (e *InvalidCustomPropertyError) ErrorCode() string {
	return code.InvalidCustomProperty.String()
}

// Message returns the raw failure description without the code prefix.
func (e *InvalidCustomPropertyError) Message() string { return e.message }
