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

// Package mapper resolves dispatchx error codes into transport statuses.
//
// The error core classifies failures; it does not decide how a receiver
// answers the outside world. That decision lives here: an immutable,
// concurrency-safe snapshot mapping each registered code to an HTTP status
// and a gRPC status.
//
// A mapper is built once from functional options and then reused for the
// lifetime of the process:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.ReceiverAuthenticity, http.StatusForbidden),
//	)
//
// Resolution order per code (highest to lowest): exact override, library or
// user default, global fallback (500 / codes.Internal). Explain reports
// which tier matched for a given code, for diagnostics.
package mapper
