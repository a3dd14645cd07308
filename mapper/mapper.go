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
	"fmt"
	"strings"

	"dispatchx.dev/dxerrors/apis"
	"dispatchx.dev/dxerrors/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC) for every
//     registered code.
//  2. Apply user-provided options (defaults, overrides).
//  3. Validate every configured code.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate malformed codes supplied via
// options.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder; no pre-seeded state is assumed.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate every configured code. Library defaults are canonical by
	// construction; this catches malformed codes smuggled in via options.
	for _, m := range []map[code.Code]int{b.httpDefaults, b.grpcDefaults, b.httpOverride, b.grpcOverride} {
		for c := range m {
			if err := code.Validate(c); err != nil {
				return nil, fmt.Errorf("mapper: invalid code %q in options: %w", c, err)
			}
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults with exact per-code overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given logical error code.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given logical error code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. per-code default (library or user overridden);
//  3. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(c code.Code) int {
	// 1. Fast path: exact override for this code.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 2. Per-code default.
	if v, ok := m.httpDefault[c]; ok {
		return v
	}

	// 3. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 2. Default for this code.
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}

	// 3. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps the two projections consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback).
//
// Example output:
//
//	code="receiver_authenticity"
//	http: source=default -> 401
//	grpc: source=default -> UNAUTHENTICATED(16)
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP formats which tier produced the HTTP status for c.
func (m *mapper) explainHTTP(c code.Code) string {
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC formats which tier produced the gRPC status for c.
func (m *mapper) explainGRPC(c code.Code) string {
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	if v, ok := m.grpcDefault[c]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// freezeHTTP makes an immutable copy of an HTTP status map. Used when
// finalizing the mapper so later mutations to the builder (or caller-owned
// maps) cannot affect the snapshot.
func freezeHTTP(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a gRPC status map, converting
// builder-style int values into typed gRPC codes.
func freezeGRPC(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
