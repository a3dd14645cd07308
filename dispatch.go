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
	_ apis.CodedError     = (*MultipleListenerError)(nil)
	_ apis.AggregateError = (*MultipleListenerError)(nil)
)

// multipleListenerMessage is the canned text every MultipleListenerError
// carries; the individual failures are enumerated via Originals.
const multipleListenerMessage = "Multiple errors occurred while handling several listeners. " +
	"The originals sequence contains each underlying error."

// MultipleListenerError bundles the failures of two or more independently
// registered listeners for the same event into a single reportable unit.
//
// The dispatch scheduler collects each listener's failure — whether the
// listeners ran concurrently or sequentially — and passes the complete,
// finalized sequence here exactly once. The variant provides no append
// operation: whatever ran after construction cannot alter it.
type MultipleListenerError struct {
	originals []error
}

// NewMultipleListenerError constructs the aggregator around the ordered
// underlying failures. The slice is copied so later mutation by the caller
// cannot reach the new instance; the elements themselves are retained by
// reference, without deduplication, in the order produced by the source
// listeners. In practice len(originals) >= 2, but a single-element sequence
// is not rejected.
func NewMultipleListenerError(originals []error) *MultipleListenerError {
	cp := make([]error, len(originals))
	copy(cp, originals)
	return &MultipleListenerError{originals: cp}
}

func (e *MultipleListenerError) Error() string {
	return format(code.MultipleListener, multipleListenerMessage)
}

// ErrorCode always reports code.MultipleListener.
func (e *MultipleListenerError) ErrorCode() string { return code.MultipleListener.String() }

// Message returns the canned description without the code prefix.
func (e *MultipleListenerError) Message() string { return multipleListenerMessage }

// Originals returns the bundled failures in collection order. The returned
// slice is a fresh copy; the elements are the original failure references.
func (e *MultipleListenerError) Originals() []error {
	cp := make([]error, len(e.originals))
	copy(cp, e.originals)
	return cp
}

// Unwrap exposes every bundled failure to errors.Is / errors.As traversal.
func (e *MultipleListenerError) Unwrap() []error { return e.Originals() }
