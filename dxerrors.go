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

// Package dxerrors is the error core of the dispatchx event-dispatch
// framework: one concrete variant per registered error code, the
// classification predicate IsCoded, and the normalizer AsCoded.
//
// Every failure raised inside the framework is one of the variants defined
// here. Before a failure crosses the framework boundary it passes through
// AsCoded, which guarantees the application-level handler always receives a
// value satisfying apis.CodedError — framework failures pass through
// untouched, foreign failures are wrapped into UnknownError with the
// original retained. Nothing is ever discarded.
//
// All variants are immutable after construction and safe to share across
// goroutines without synchronization.
package dxerrors

import (
	"fmt"

	"dispatchx.dev/dxerrors/apis"
	"dispatchx.dev/dxerrors/code"
)

// format renders the canonical error string for a variant.
//
// The format is:
//
//	<code>: <message>
//
// or just "<code>" when no message was supplied. This makes every framework
// error both human- and machine-scannable in logs, and keeps the raw message
// recoverable via the variant's Message accessor.
func format(c code.Code, msg string) string {
	if msg == "" {
		return c.String()
	}
	return fmt.Sprintf("%s: %s", c, msg)
}

// IsCoded reports whether err itself satisfies the coded-error contract.
//
// The check is structural and deliberately shallow: it asserts the contract
// on the value as given, without walking an Unwrap chain. A failure of
// unknown provenance either carries a code or it does not — probing wrapped
// causes would let an uncoded wrapper masquerade as classified.
//
// Edge case: any type with an ErrorCode method passes, including ones this
// module did not create. That is accepted, documented looseness — it is what
// lets coded failures minted by other dispatchx versions (or compatible
// third parties) flow through AsCoded unwrapped.
func IsCoded(err error) bool {
	_, ok := err.(apis.CodedError)
	return ok
}

// AsCoded normalizes an arbitrary failure into the coded-error contract.
//
// Rules:
//   - nil stays nil;
//   - a value already satisfying the contract is returned unchanged — same
//     reference, no copy, no mutation;
//   - anything else is wrapped into an UnknownError whose message equals
//     err.Error() and whose Original is err itself, so no information is
//     lost and the caller can always recover the original failure.
//
// AsCoded is total: it never fails and has no side effects beyond the
// wrapper allocation. Every collaborator (listener dispatch, transport
// receivers, the context binder, the custom-function lifecycle) is expected
// to route failures through this function at its boundary rather than
// duplicate normalization logic.
func AsCoded(err error) apis.CodedError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(apis.CodedError); ok {
		return ce
	}
	return NewUnknownError(err)
}
