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

// Package code defines the closed registry of dispatchx error codes and the
// canonical representation of a code value.
//
// A "code" is the machine-readable classification of a framework failure,
// such as "authorization", "multiple_listener" or "unknown". Codes are meant
// to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - opaque to consumers: equality comparison is the only supported
//     operation, there is no ordering and no numeric meaning.
//
// The registry is closed: new codes require a build-time change to this
// package, never a runtime extension. Adding a code is additive-safe for
// consumers; removing or renaming one is a breaking change.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every framework error MUST
// report a non-empty code.
package code
