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

package code

// Initialization error codes
//
// These codes classify fatal failures raised once while the framework is
// being assembled, before any event is dispatched. They are surfaced at
// startup and never retried.
const (
	// AppInitialization indicates that the top-level App could not be
	// constructed: conflicting options, a missing token/receiver pairing,
	// or any other configuration problem detected while wiring the app.
	//
	// NOTE: this code is shared by InvalidCustomProperty (see below).
	AppInitialization Code = "app_initialization"

	// AssistantInitialization indicates that an assistant middleware
	// bundle was configured without the handlers it requires.
	AssistantInitialization Code = "assistant_initialization"

	// CustomRouteInitialization indicates that a user-supplied HTTP route
	// definition is incomplete (missing path, method, or handler).
	CustomRouteInitialization Code = "custom_route_initialization"

	// WorkflowStepInitialization indicates that a workflow step was
	// registered without a callback for one of its lifecycle phases.
	//
	// Deprecated: workflow steps are scheduled for removal; the code is
	// retained so existing handlers that branch on it keep working.
	WorkflowStepInitialization Code = "workflow_step_initialization"

	// CustomFunctionInitialization indicates that a custom function was
	// registered with an invalid callback identifier or handler set.
	CustomFunctionInitialization Code = "custom_function_initialization"
)

// Context / property error codes
//
// These codes classify per-invocation failures caused by a required value
// being absent from the context handed to a listener.
const (
	// ContextMissingProperty indicates that a required field is absent
	// from a per-invocation context. The error instance names the exact
	// missing key.
	ContextMissingProperty Code = "context_missing_property"

	// AssistantMissingProperty indicates that an assistant thread context
	// lacks a property the assistant handlers rely on.
	AssistantMissingProperty Code = "assistant_missing_property"
)

// InvalidCustomProperty classifies a rejected user-supplied custom context
// property.
//
// NOTE: it deliberately reuses the AppInitialization value. The upstream
// registry defined it this way and handlers in the wild branch on the shared
// string, so the discrepancy is preserved rather than silently fixed. The
// registry therefore contains one entry for both names.
const InvalidCustomProperty = AppInitialization

// Authorization error codes
const (
	// Authorization indicates that resolving credentials for an incoming
	// event failed. The error instance retains the underlying failure.
	Authorization Code = "authorization"
)

// Receiver / transport error codes
//
// These codes classify failures raised by the receiver while accepting an
// event from the outside world and acknowledging it.
const (
	// ReceiverMultipleAck indicates that a listener acknowledged the same
	// incoming event more than once.
	ReceiverMultipleAck Code = "receiver_multiple_ack"

	// ReceiverAuthenticity indicates that an incoming request failed
	// signature or timestamp verification and cannot be trusted.
	ReceiverAuthenticity Code = "receiver_authenticity"

	// ReceiverInconsistentState indicates that the receiver reached a state
	// that should be unreachable, e.g. event metadata lost between
	// verification and dispatch.
	ReceiverInconsistentState Code = "receiver_inconsistent_state"

	// HTTPReceiverDeferredRequest indicates that an HTTP exchange could not
	// be completed synchronously within the expected window. The error
	// instance carries the live request/response handles so the transport
	// layer can still respond or clean up.
	HTTPReceiverDeferredRequest Code = "http_receiver_deferred_request"
)

// Dispatch error codes
const (
	// MultipleListener indicates that two or more independently registered
	// listeners for the same event each failed. The error instance bundles
	// all underlying failures in registration order.
	MultipleListener Code = "multiple_listener"
)

// Custom function lifecycle error codes
const (
	// CustomFunctionCompleteSuccess indicates that reporting a successful
	// custom function completion back to the platform failed.
	CustomFunctionCompleteSuccess Code = "custom_function_complete_success"

	// CustomFunctionCompleteFail indicates that reporting a failed custom
	// function completion back to the platform itself failed.
	CustomFunctionCompleteFail Code = "custom_function_complete_fail"
)

// Fallback error code
const (
	// Unknown is reserved for failures the framework did not itself
	// classify. It MUST never be produced for a failure that already
	// satisfies the coded-error contract; the normalizer enforces this.
	Unknown Code = "unknown"
)

// registry enumerates every code this build of the framework can produce.
// InvalidCustomProperty aliases AppInitialization, so it contributes no
// extra entry. Order matters: All() exposes it as the stable public order.
var registry = []Code{
	AppInitialization,
	AssistantInitialization,
	CustomRouteInitialization,
	WorkflowStepInitialization,
	CustomFunctionInitialization,
	ContextMissingProperty,
	AssistantMissingProperty,
	Authorization,
	ReceiverMultipleAck,
	ReceiverAuthenticity,
	ReceiverInconsistentState,
	HTTPReceiverDeferredRequest,
	MultipleListener,
	CustomFunctionCompleteSuccess,
	CustomFunctionCompleteFail,
	Unknown,
}

// registered is the lookup index over registry, built once at package init.
var registered = func() map[Code]struct{} {
	m := make(map[Code]struct{}, len(registry))
	for _, c := range registry {
		m[c] = struct{}{}
	}
	return m
}()

// IsRegistered reports whether c belongs to this build's closed registry.
//
// Transport adapters use this to decide between "known framework failure"
// and "code minted elsewhere"; consumers branching on a specific code do
// not need it.
func IsRegistered(c Code) bool {
	_, ok := registered[c]
	return ok
}

// All returns every registered code in stable declaration order.
//
// The returned slice is a fresh copy; callers may modify it freely.
func All() []Code {
	out := make([]Code, len(registry))
	copy(out, registry)
	return out
}
