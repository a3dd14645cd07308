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
	"strings"
	"testing"

	"dispatchx.dev/dxerrors/code"
	"google.golang.org/grpc/codes"
)

func TestNew_Defaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tests := []struct {
		c        code.Code
		wantHTTP int
		wantGRPC codes.Code
	}{
		{code.AppInitialization, http.StatusInternalServerError, codes.Internal},
		{code.Authorization, http.StatusUnauthorized, codes.Unauthenticated},
		{code.ReceiverAuthenticity, http.StatusUnauthorized, codes.Unauthenticated},
		{code.HTTPReceiverDeferredRequest, http.StatusRequestTimeout, codes.DeadlineExceeded},
		{code.MultipleListener, http.StatusInternalServerError, codes.Internal},
		{code.CustomFunctionCompleteFail, http.StatusBadGateway, codes.Unavailable},
		{code.Unknown, http.StatusInternalServerError, codes.Unknown},
	}
	for _, tt := range tests {
		st := m.Status(tt.c)
		if st.HTTP != tt.wantHTTP {
			t.Fatalf("HTTPStatus(%q) = %d, want %d", tt.c, st.HTTP, tt.wantHTTP)
		}
		if st.GRPC != tt.wantGRPC {
			t.Fatalf("GRPCStatus(%q) = %v, want %v", tt.c, st.GRPC, tt.wantGRPC)
		}
	}
}

func TestNew_EveryRegisteredCodeHasDefaults(t *testing.T) {
	// Every code in the closed registry must resolve through the default
	// tier, never through the fallback.
	for _, c := range code.All() {
		if _, ok := defaultHTTP[c]; !ok {
			t.Fatalf("registered code %q has no HTTP default", c)
		}
		if _, ok := defaultGRPC[c]; !ok {
			t.Fatalf("registered code %q has no gRPC default", c)
		}
	}
}

func TestOverride_BeatsDefault(t *testing.T) {
	m, err := New(
		WithHTTPOverride(code.ReceiverAuthenticity, http.StatusForbidden),
		WithGRPCOverride(code.ReceiverAuthenticity, int(codes.PermissionDenied)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := m.HTTPStatus(code.ReceiverAuthenticity); got != http.StatusForbidden {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusForbidden)
	}
	if got := m.GRPCStatus(code.ReceiverAuthenticity); got != codes.PermissionDenied {
		t.Fatalf("GRPCStatus = %v, want %v", got, codes.PermissionDenied)
	}
}

func TestUserDefault_ReplacesLibraryDefault(t *testing.T) {
	m, err := New(WithHTTPDefault(code.HTTPReceiverDeferredRequest, http.StatusServiceUnavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(code.HTTPReceiverDeferredRequest); got != http.StatusServiceUnavailable {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestFallback_ForUnmappedCode(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// A structurally valid code no tier knows about.
	st := m.Status(code.Code("minted_elsewhere"))
	if st.HTTP != http.StatusInternalServerError {
		t.Fatalf("fallback HTTP = %d, want 500", st.HTTP)
	}
	if st.GRPC != codes.Internal {
		t.Fatalf("fallback GRPC = %v, want Internal", st.GRPC)
	}
}

func TestNew_RejectsMalformedOptionCode(t *testing.T) {
	if _, err := New(WithHTTPOverride("Not-Canonical!", http.StatusTeapot)); err == nil {
		t.Fatal("New must reject malformed codes supplied via options")
	}
}

func TestExplain_ReportsMatchedTier(t *testing.T) {
	m, err := New(WithHTTPOverride(code.Authorization, http.StatusForbidden))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out := m.Explain(code.Authorization)
	if !strings.Contains(out, "source=override") {
		t.Fatalf("Explain missing override tier for http:\n%s", out)
	}
	if !strings.Contains(out, "source=default") {
		t.Fatalf("Explain missing default tier for grpc:\n%s", out)
	}

	out = m.Explain(code.Code("minted_elsewhere"))
	if !strings.Contains(out, "source=fallback") {
		t.Fatalf("Explain missing fallback tier:\n%s", out)
	}
}

func TestSnapshot_DetachedFromLaterOptions(t *testing.T) {
	// Reusing an option value after New must not mutate the built snapshot.
	opt := WithHTTPDefault(code.Unknown, http.StatusBadGateway)
	m1, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := New(opt); err != nil {
		t.Fatalf("New with option: %v", err)
	}
	if got := m1.HTTPStatus(code.Unknown); got != http.StatusInternalServerError {
		t.Fatalf("earlier snapshot changed: HTTPStatus = %d", got)
	}
}
