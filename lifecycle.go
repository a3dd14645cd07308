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
	_ apis.CodedError = (*CustomFunctionCompleteSuccessError)(nil)
	_ apis.CodedError = (*CustomFunctionCompleteFailError)(nil)
)

// CustomFunctionCompleteSuccessError reports that signalling a successful
// custom function completion back to the platform failed.
type CustomFunctionCompleteSuccessError struct {
	message string
}

// NewCustomFunctionCompleteSuccessError constructs the variant.
func NewCustomFunctionCompleteSuccessError(message string) *CustomFunctionCompleteSuccessError {
	return &CustomFunctionCompleteSuccessError{message: message}
}

func (e *CustomFunctionCompleteSuccessError) Error() string {
	return format(code.CustomFunctionCompleteSuccess, e.message)
}

// ErrorCode always reports code.CustomFunctionCompleteSuccess.
func (e *CustomFunctionCompleteSuccessError) ErrorCode() string {
	return code.CustomFunctionCompleteSuccess.String()
}

// Message returns the raw failure description without the code prefix.
func (e *CustomFunctionCompleteSuccessError) Message() string { return e.message }

// CustomFunctionCompleteFailError reports that signalling a failed custom
// function completion back to the platform itself failed.
type CustomFunctionCompleteFailError struct {
	message string
}

// NewCustomFunctionCompleteFailError constructs the variant.
func NewCustomFunctionCompleteFailError(message string) *CustomFunctionCompleteFailError {
	return &CustomFunctionCompleteFailError{message: message}
}

func (e *CustomFunctionCompleteFailError) Error() string {
	return format(code.CustomFunctionCompleteFail, e.message)
}

// ErrorCode always reports code.CustomFunctionCompleteFail.
func (e *CustomFunctionCompleteFailError) ErrorCode() string {
	return code.CustomFunctionCompleteFail.String()
}

// Message returns the raw failure description without the code prefix.
func (e *CustomFunctionCompleteFailError) Message() string { return e.message }
