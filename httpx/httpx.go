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

// Package httpx adapts dispatchx errors to HTTP responses at the receiver
// boundary.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dispatchx.dev/dxerrors"
	"dispatchx.dev/dxerrors/adapter"
	"dispatchx.dev/dxerrors/apis"
	"dispatchx.dev/dxerrors/code"
)

// Meta carries extra context that the HTTP layer can add on top of the
// error itself. All fields are optional and typically come from request
// context, headers, or rate-limiter output.
type Meta struct {
	// Correlation is a client/server correlation token (request ID,
	// idempotency key). Emitted via the X-Correlation-Id header.
	Correlation string

	// RetryAfterSeconds, when positive, is emitted via the Retry-After
	// header as a delivery-retry hint.
	RetryAfterSeconds int
}

// Writer is a thin adapter that knows how to turn any failure into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write normalizes err, resolves its HTTP status via the Mapper, and writes
// a JSON error envelope to the response writer.
//
// Any failure is accepted: uncoded values pass through dxerrors.AsCoded
// first, so the body always carries a code the caller can branch on. A nil
// err writes nothing.
//
// No automatic redaction or filtering is performed here: whatever the error
// view exposes is sent as-is. Higher-level handlers should apply policies
// if needed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	ce := dxerrors.AsCoded(err)
	if ce == nil {
		return
	}

	st := w.Mapper.HTTPStatus(code.Code(ce.ErrorCode()))
	view := adapter.ToView(ce)

	rw.Header().Set("Content-Type", "application/json")
	if meta.Correlation != "" {
		rw.Header().Set("X-Correlation-Id", meta.Correlation)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st)

	// Encoding an ErrorView cannot fail (plain strings and slices only);
	// a write error at this point means the client is gone.
	b, _ := json.Marshal(view)
	_, _ = rw.Write(b)
}

// CompleteDeferred answers the exchange retained by an
// HTTPReceiverDeferredRequestError.
//
// The deferred-request variant carries the live response handle precisely so
// the transport layer can still respond after dispatch timed out; this
// helper is that response. It reports false when err does not retain a
// usable handle, in which case nothing is written and the caller keeps
// ownership of the exchange.
func (w Writer) CompleteDeferred(err *dxerrors.HTTPReceiverDeferredRequestError, meta Meta) bool {
	if err == nil || err.ResponseWriter() == nil {
		return false
	}
	w.Write(err.ResponseWriter(), err, meta)
	return true
}
