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

// ErrorView is a minimal, serializable representation of a framework error.
//
// This is *not* the concrete error type used internally — it is the shape
// that is comfortable to expose over the wire or log. Keeping it here (in
// apis) allows the HTTP and gRPC adapters to share the same struct.
//
// Only the fields relevant to the underlying variant are populated; the
// rest are omitted from the encoded form, preserving the tagged-union shape
// of the error model.
type ErrorView struct {
	// Code is the machine-readable classification, e.g. "authorization",
	// "multiple_listener", "unknown".
	Code string `json:"code"`

	// Message is the human-readable failure description.
	Message string `json:"message,omitempty"`

	// MissingProperty names the absent context key. Present only for
	// context-property failures.
	MissingProperty string `json:"missing_property,omitempty"`

	// Original is the rendered message of the causing failure. Present only
	// for wrapper variants (authorization, unknown).
	Original string `json:"original,omitempty"`

	// Originals holds the rendered messages of each bundled failure, in
	// collection order. Present only for the aggregator variant.
	Originals []string `json:"originals,omitempty"`
}

// ErrorDescriptor is a flat, transport-friendly description of a resolved
// error: the logical code together with the concrete transport statuses.
//
// It is intended for structured logging, tracing, or message bus
// propagation. This type intentionally uses plain strings and ints so it can
// live in the public "apis" layer and survive JSON round-trips unchanged.
type ErrorDescriptor struct {
	// Code is the machine-readable classification.
	Code string `json:"code"`

	// Message is an optional human-friendly description.
	Message string `json:"message,omitempty"`

	// HTTPStatus is the HTTP status resolved for this error.
	// A value of 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) resolved for this error.
	// A value of 0 means "not resolved" (never OK for a failure).
	GRPCCode int `json:"grpc_code,omitempty"`
}
