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

package apis

// CodedError is the common contract every dispatchx failure satisfies: an
// error classified into a well-defined, machine-readable code.
//
// The codes form a closed set, registered in the dxerrors/code package, e.g.:
//   - "authorization"       — resolving credentials for an event failed,
//   - "multiple_listener"   — several listeners for one event each failed,
//   - "unknown"             — a failure the framework did not classify.
//
// Codes are stable and enumerable. They are the primary value the global
// error handler branches on, and the value transport adapters use to decide
// which status to return.
//
// The check for this contract is structural, not nominal: any value carrying
// an ErrorCode method satisfies it, including values this module did not
// create. A type that happens to carry such a method is indistinguishable
// from a genuine framework error — that looseness is accepted and documented,
// because it is what lets foreign coded failures pass through unwrapped.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// For framework-constructed errors the value is fixed per variant at
	// definition time and MUST equal a registered code from dxerrors/code.
	// It is never empty.
	ErrorCode() string
}

// OriginalError is satisfied by wrapper/derived variants that retain the
// failure that caused them (authorization failures, normalized unknowns).
//
// Implementations MUST return the causing failure unmodified — the consumer
// can always recover exactly what was wrapped. If there is no underlying
// failure, Original returns nil.
type OriginalError interface {
	error

	// Original returns the causing failure, or nil.
	Original() error
}

// AggregateError is satisfied by the aggregator variant, which bundles the
// failures of multiple independently registered listeners into one
// reportable unit.
//
// Implementations MUST preserve the order in which the failures were
// collected and MUST NOT deduplicate. The returned slice is safe to iterate;
// its elements are the original failure values by reference.
type AggregateError interface {
	error

	// Originals returns the ordered underlying failures.
	Originals() []error
}

// PropertyError is satisfied by context-property variants that can name the
// exact key absent from a per-invocation context.
type PropertyError interface {
	error

	// MissingProperty returns the name of the missing context key.
	MissingProperty() string
}
