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
	"net/http"

	"dispatchx.dev/dxerrors/apis"
	"dispatchx.dev/dxerrors/code"
)

var (
	_ apis.CodedError = (*ReceiverMultipleAckError)(nil)
	_ apis.CodedError = (*ReceiverAuthenticityError)(nil)
	_ apis.CodedError = (*ReceiverInconsistentStateError)(nil)
	_ apis.CodedError = (*HTTPReceiverDeferredRequestError)(nil)
)

// multipleAckMessage is the canned text every ReceiverMultipleAckError
// carries. The wording is part of the compatibility surface; do not edit.
const multipleAckMessage = "The receiver's `ack` function was called multiple times."

// ReceiverMultipleAckError reports that a listener acknowledged the same
// incoming event more than once. The message is fixed; the failure site
// supplies nothing.
type ReceiverMultipleAckError struct{}

// NewReceiverMultipleAckError constructs the variant.
func NewReceiverMultipleAckError() *ReceiverMultipleAckError {
	return &ReceiverMultipleAckError{}
}

func (e *ReceiverMultipleAckError) Error() string {
	return format(code.ReceiverMultipleAck, multipleAckMessage)
}

// ErrorCode always reports code.ReceiverMultipleAck.
func (e *ReceiverMultipleAckError) ErrorCode() string { return code.ReceiverMultipleAck.String() }

// Message returns the canned description without the code prefix.
func (e *ReceiverMultipleAckError) Message() string { return multipleAckMessage }

// ReceiverAuthenticityError reports that an incoming request failed
// signature or timestamp verification and cannot be trusted.
type ReceiverAuthenticityError struct {
	message string
}

// NewReceiverAuthenticityError constructs the variant.
func NewReceiverAuthenticityError(message string) *ReceiverAuthenticityError {
	return &ReceiverAuthenticityError{message: message}
}

func (e *ReceiverAuthenticityError) Error() string {
	return format(code.ReceiverAuthenticity, e.message)
}

// ErrorCode always reports code.ReceiverAuthenticity.
func (e *ReceiverAuthenticityError) ErrorCode() string { return code.ReceiverAuthenticity.String() }

// Message returns the raw failure description without the code prefix.
func (e *ReceiverAuthenticityError) Message() string { return e.message }

// ReceiverInconsistentStateError reports that the receiver reached a state
// that should be unreachable, e.g. event metadata lost between verification
// and dispatch.
type ReceiverInconsistentStateError struct {
	message string
}

// NewReceiverInconsistentStateError constructs the variant.
func NewReceiverInconsistentStateError(message string) *ReceiverInconsistentStateError {
	return &ReceiverInconsistentStateError{message: message}
}

func (e *ReceiverInconsistentStateError) Error() string {
	return format(code.ReceiverInconsistentState, e.message)
}

// ErrorCode always reports code.ReceiverInconsistentState.
func (e *ReceiverInconsistentStateError) ErrorCode() string {
	return code.ReceiverInconsistentState.String()
}

// Message returns the raw failure description without the code prefix.
func (e *ReceiverInconsistentStateError) Message() string { return e.message }

// HTTPReceiverDeferredRequestError reports that an HTTP exchange could not
// be completed synchronously within the expected window.
//
// The variant carries the live request/response handles by reference so the
// transport layer can still respond or clean up after dispatch has moved on.
// This package neither closes nor writes to them; lifetime and disposal
// remain the transport collaborator's responsibility.
type HTTPReceiverDeferredRequestError struct {
	message string
	req     *http.Request
	res     http.ResponseWriter
}

// NewHTTPReceiverDeferredRequestError constructs the variant around the
// still-open exchange.
func NewHTTPReceiverDeferredRequestError(message string, req *http.Request, res http.ResponseWriter) *HTTPReceiverDeferredRequestError {
	return &HTTPReceiverDeferredRequestError{message: message, req: req, res: res}
}

func (e *HTTPReceiverDeferredRequestError) Error() string {
	return format(code.HTTPReceiverDeferredRequest, e.message)
}

// ErrorCode always reports code.HTTPReceiverDeferredRequest.
func (e *HTTPReceiverDeferredRequestError) ErrorCode() string {
	return code.HTTPReceiverDeferredRequest.String()
}

// Message returns the raw failure description without the code prefix.
func (e *HTTPReceiverDeferredRequestError) Message() string { return e.message }

// Request returns the retained request handle.
func (e *HTTPReceiverDeferredRequestError) Request() *http.Request { return e.req }

// ResponseWriter returns the retained response handle.
func (e *HTTPReceiverDeferredRequestError) ResponseWriter() http.ResponseWriter { return e.res }
