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

import (
	"dispatchx.dev/dxerrors/code"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules.
// It resolves a logical dispatchx error code into transport statuses for
// HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status code for the given error code.
	// Unregistered codes resolve to the mapper's fallback.
	HTTPStatus(c code.Code) int

	// GRPCStatus returns the gRPC status code for the given error code.
	// Unregistered codes resolve to the mapper's fallback.
	GRPCStatus(c code.Code) codes.Code

	// Status resolves both HTTP and gRPC in a single call, using the same
	// matching logic, so the two projections of one error never disagree.
	Status(c code.Code) Status

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(c code.Code) string
}

// Status represents a resolved pair of transport statuses for a single
// error. It is the final output of the mapper and can be written directly
// to HTTP/gRPC.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
