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

package mapper

import (
	"net/http"

	"dispatchx.dev/dxerrors/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the closed
// code registry. These are only defaults: integrators are expected to
// override them at the boundary where HTTP is actually produced when their
// policy differs.
//
// The intent is to stay close to common REST conventions while reflecting
// what each failure class means for the caller of an event endpoint.
var defaultHTTP = map[code.Code]int{
	// Initialization failures never reach a live request path in a healthy
	// deployment; if one does surface over HTTP, it is a server-side fault.
	code.AppInitialization:            http.StatusInternalServerError,
	code.AssistantInitialization:      http.StatusInternalServerError,
	code.CustomRouteInitialization:    http.StatusInternalServerError,
	code.WorkflowStepInitialization:   http.StatusInternalServerError,
	code.CustomFunctionInitialization: http.StatusInternalServerError,

	// Per-invocation context failures: the framework, not the caller, failed
	// to provide a required value.
	code.ContextMissingProperty:   http.StatusInternalServerError,
	code.AssistantMissingProperty: http.StatusInternalServerError,

	// The caller's event could not be authorized.
	code.Authorization: http.StatusUnauthorized,

	// Receiver failures.
	code.ReceiverMultipleAck:       http.StatusInternalServerError, // Listener bug, not a caller problem.
	code.ReceiverAuthenticity:      http.StatusUnauthorized,        // Signature/timestamp verification failed.
	code.ReceiverInconsistentState: http.StatusInternalServerError, // Unreachable state reached.
	// The exchange was not completed within the expected window; the caller
	// may retry delivery.
	code.HTTPReceiverDeferredRequest: http.StatusRequestTimeout,

	// Dispatch and lifecycle failures are server-side.
	code.MultipleListener:              http.StatusInternalServerError,
	code.CustomFunctionCompleteSuccess: http.StatusBadGateway, // Completion report to the platform failed.
	code.CustomFunctionCompleteFail:    http.StatusBadGateway,

	// Unclassified failures must never leak detail; plain 500.
	code.Unknown: http.StatusInternalServerError,
}

// defaultGRPC defines the library's built-in gRPC mappings for the closed
// code registry, aligned with canonical gRPC status semantics.
var defaultGRPC = map[code.Code]codes.Code{
	code.AppInitialization:            codes.Internal,
	code.AssistantInitialization:      codes.Internal,
	code.CustomRouteInitialization:    codes.Internal,
	code.WorkflowStepInitialization:   codes.Internal,
	code.CustomFunctionInitialization: codes.Internal,

	code.ContextMissingProperty:   codes.Internal,
	code.AssistantMissingProperty: codes.Internal,

	code.Authorization: codes.Unauthenticated,

	code.ReceiverMultipleAck:       codes.Internal,
	code.ReceiverAuthenticity:      codes.Unauthenticated,
	code.ReceiverInconsistentState: codes.Internal,
	// The synchronous window elapsed before the exchange finished.
	code.HTTPReceiverDeferredRequest: codes.DeadlineExceeded,

	code.MultipleListener: codes.Internal,
	// The platform call behind the completion report failed.
	code.CustomFunctionCompleteSuccess: codes.Unavailable,
	code.CustomFunctionCompleteFail:    codes.Unavailable,

	code.Unknown: codes.Unknown,
}
