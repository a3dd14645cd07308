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

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatchx.dev/dxerrors"
	"dispatchx.dev/dxerrors/apis"
	"dispatchx.dev/dxerrors/mapper"
)

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New()
	require.NoError(t, err)
	return Writer{Mapper: m}
}

func TestWrite_CodedError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, dxerrors.NewAuthorizationError("denied", errors.New("token lookup failed")), Meta{})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var view apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "authorization", view.Code)
	assert.Equal(t, "denied", view.Message)
	assert.Equal(t, "token lookup failed", view.Original)
}

func TestWrite_NormalizesForeignFailures(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, errors.New("database exploded"), Meta{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var view apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "unknown", view.Code)
	assert.Equal(t, "database exploded", view.Message)
}

func TestWrite_Meta(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, dxerrors.NewReceiverAuthenticityError("bad signature"), Meta{
		Correlation:       "req-123",
		RetryAfterSeconds: 30,
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Correlation-Id"))
	assert.Equal(t, "30", rec.Header().Get("Retry-After"))
}

func TestWrite_Nil(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()

	w.Write(rec, nil, Meta{})

	assert.Zero(t, rec.Body.Len())
	assert.Equal(t, http.StatusOK, rec.Code, "nothing must be written for nil")
}

func TestCompleteDeferred(t *testing.T) {
	w := newWriter(t)
	req := httptest.NewRequest(http.MethodPost, "/events", nil)
	rec := httptest.NewRecorder()

	derr := dxerrors.NewHTTPReceiverDeferredRequestError("request not completed in time", req, rec)
	require.True(t, w.CompleteDeferred(derr, Meta{}))

	assert.Equal(t, http.StatusRequestTimeout, rec.Code)

	var view apis.ErrorView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "http_receiver_deferred_request", view.Code)
}

func TestCompleteDeferred_NoHandle(t *testing.T) {
	w := newWriter(t)

	derr := dxerrors.NewHTTPReceiverDeferredRequestError("lost exchange", nil, nil)
	assert.False(t, w.CompleteDeferred(derr, Meta{}))
	assert.False(t, w.CompleteDeferred(nil, Meta{}))
}
