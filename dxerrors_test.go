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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatchx.dev/dxerrors/apis"
	"dispatchx.dev/dxerrors/code"
)

// foreignCoded is a type this module did not create that still carries an
// ErrorCode method. The structural check must accept it.
type foreignCoded struct{ c string }

func (f foreignCoded) Error() string     { return "foreign: " + f.c }
func (f foreignCoded) ErrorCode() string { return f.c }

func TestIsCoded(t *testing.T) {
	assert.True(t, IsCoded(NewAppInitializationError("bad config")))
	assert.True(t, IsCoded(NewUnknownError(errors.New("boom"))))
	assert.True(t, IsCoded(foreignCoded{c: "their_code"}),
		"any value with an ErrorCode method must pass, regardless of nominal type")

	assert.False(t, IsCoded(errors.New("plain")))
	assert.False(t, IsCoded(nil))
}

func TestIsCoded_DoesNotWalkUnwrapChain(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewAuthorizationError("denied", errors.New("root")))
	assert.False(t, IsCoded(wrapped),
		"an uncoded wrapper must not masquerade as classified via its cause")
}

func TestAsCoded_IdentityForCodedValues(t *testing.T) {
	coded := []error{
		NewAppInitializationError("bad config"),
		NewAuthorizationError("denied", errors.New("root")),
		NewContextMissingPropertyError("userId", "missing user id"),
		NewMultipleListenerError([]error{errors.New("a"), errors.New("b")}),
		NewReceiverMultipleAckError(),
		NewUnknownError(errors.New("boom")),
	}
	for _, err := range coded {
		got := AsCoded(err)
		// Reference-identical, not just equal: no copy, no mutation.
		assert.Same(t, err, error(got), "AsCoded must return the same reference for %T", err)
	}

	// Foreign coded values (here a non-pointer type) also pass through as-is.
	foreign := foreignCoded{c: "their_code"}
	assert.Equal(t, error(foreign), error(AsCoded(foreign)))
}

func TestAsCoded_WrapsForeignFailures(t *testing.T) {
	orig := errors.New("database exploded")

	got := AsCoded(orig)
	require.NotNil(t, got)
	assert.Equal(t, code.Unknown.String(), got.ErrorCode())

	ue, ok := got.(*UnknownError)
	require.True(t, ok)
	assert.Same(t, orig, ue.Original(), "the original must be retained unmodified")
	assert.Equal(t, orig.Error(), ue.Message(), "the message must equal the original's message")
}

func TestAsCoded_Nil(t *testing.T) {
	assert.Nil(t, AsCoded(nil))
}

// A runtime-raised failure with no code must come out of the normalizer
// usable in a switch on the code, with no type check failure.
func TestAsCoded_SwitchOnCode(t *testing.T) {
	var seen string
	switch err := AsCoded(errors.New("panic recovered")); err.ErrorCode() {
	case code.Unknown.String():
		seen = err.ErrorCode()
	default:
		t.Fatalf("unexpected code %q", err.ErrorCode())
	}
	assert.Equal(t, "unknown", seen)
}

// Dispatch scenario: two listeners for one event fail with distinct errors;
// the scheduler aggregates them; the application handler receives a contract
// value it can branch on and enumerate.
func TestDispatchScenario_TwoFailingListeners(t *testing.T) {
	errA := errors.New("listener A failed")
	errB := NewContextMissingPropertyError("teamId", "missing team id")

	// The scheduler collects the finalized sequence and constructs the
	// aggregator exactly once.
	handled := AsCoded(NewMultipleListenerError([]error{errA, errB}))

	require.Equal(t, code.MultipleListener.String(), handled.ErrorCode())

	agg, ok := handled.(apis.AggregateError)
	require.True(t, ok)
	originals := agg.Originals()
	require.Len(t, originals, 2)
	assert.Same(t, errA, originals[0])
	assert.Same(t, error(errB), originals[1])
}

func TestErrorFormat(t *testing.T) {
	assert.Equal(t, "authorization: denied",
		NewAuthorizationError("denied", nil).Error())
	assert.Equal(t, "app_initialization",
		NewAppInitializationError("").Error(),
		"empty message renders as the bare code")
}
