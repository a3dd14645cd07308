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

// Package adapter converts coded errors into the flat view types that the
// transport adapters and structured loggers consume.
package adapter

import (
	"dispatchx.dev/dxerrors/apis"
)

// messager matches variants that expose their raw message without the code
// prefix. Foreign coded values typically do not, in which case the full
// Error() text is used instead.
type messager interface {
	Message() string
}

// ToView flattens any coded error into a serializable ErrorView.
//
// The variant's optional payloads are probed through the small apis
// contracts, never through concrete types, so foreign coded values flatten
// just as well as framework ones. Only the fields relevant to the variant
// are populated; originals are rendered to their message text — views are
// for exposure, the live references stay on the error itself.
func ToView(err apis.CodedError) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		Code:    err.ErrorCode(),
		Message: messageOf(err),
	}
	if pe, ok := err.(apis.PropertyError); ok {
		v.MissingProperty = pe.MissingProperty()
	}
	if oe, ok := err.(apis.OriginalError); ok {
		if orig := oe.Original(); orig != nil {
			v.Original = orig.Error()
		}
	}
	if ae, ok := err.(apis.AggregateError); ok {
		originals := ae.Originals()
		if len(originals) > 0 {
			v.Originals = make([]string, len(originals))
			for i, o := range originals {
				v.Originals[i] = o.Error()
			}
		}
	}
	return v
}

// ToDescriptor converts a coded error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical code and the concrete transport
// statuses (HTTP and gRPC).
func ToDescriptor(err apis.CodedError, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       err.ErrorCode(),
		Message:    messageOf(err),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
}

// messageOf prefers the variant's raw message and falls back to the full
// rendered error text for values that do not expose one.
func messageOf(err apis.CodedError) string {
	if m, ok := err.(messager); ok {
		return m.Message()
	}
	return err.Error()
}
