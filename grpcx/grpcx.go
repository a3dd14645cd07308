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

// Package grpcx adapts dispatchx errors to gRPC statuses at the receiver
// boundary.
package grpcx

import (
	"context"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"dispatchx.dev/dxerrors"
	"dispatchx.dev/dxerrors/apis"
	"dispatchx.dev/dxerrors/code"
)

// Domain is the value carried in ErrorInfo.Domain for every error this
// package emits. Clients use it to recognize dispatchx-classified failures
// among arbitrary status details.
const Domain = "dispatchx.dev"

// Metadata keys used in the emitted ErrorInfo.
const (
	// metaMissingProperty names the absent context key, when the underlying
	// variant carries one.
	metaMissingProperty = "missing_property"

	// metaOriginal carries the rendered message of the causing failure for
	// wrapper variants.
	metaOriginal = "original"

	// metaOriginalsCount carries the number of bundled failures for the
	// aggregator variant.
	metaOriginalsCount = "originals_count"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// every handler failure into a gRPC error carrying an
// errdetails.ErrorInfo detail.
//
// Failures are routed through dxerrors.AsCoded first, so foreign errors
// surface as the unknown classification instead of leaking through with
// transport-level defaults. The provided apis.Mapper resolves the logical
// code into the transport status.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		ce := dxerrors.AsCoded(err)
		st := m.GRPCStatus(code.Code(ce.ErrorCode()))

		base := gstatus.New(st, ce.Error())

		// Try to attach the classification as details. If it fails — return base.
		if with, derr := base.WithDetails(toErrorInfo(ce)); derr == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

// toErrorInfo builds the ErrorInfo detail for a coded error. The Reason
// field carries the logical code; variant payloads land in Metadata so
// clients can inspect them without knowing concrete types.
func toErrorInfo(ce apis.CodedError) *errdetails.ErrorInfo {
	info := &errdetails.ErrorInfo{
		Reason: ce.ErrorCode(),
		Domain: Domain,
	}

	md := make(map[string]string)
	if pe, ok := ce.(apis.PropertyError); ok {
		md[metaMissingProperty] = pe.MissingProperty()
	}
	if oe, ok := ce.(apis.OriginalError); ok {
		if orig := oe.Original(); orig != nil {
			md[metaOriginal] = orig.Error()
		}
	}
	if ae, ok := ce.(apis.AggregateError); ok {
		md[metaOriginalsCount] = strconv.Itoa(len(ae.Originals()))
	}
	if len(md) > 0 {
		info.Metadata = md
	}
	return info
}

// ExtractInfo pulls the dispatchx ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code. Details from other domains are ignored.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// FormatInfo renders an ErrorInfo as canonical protobuf JSON, for logs and
// test failure output.
func FormatInfo(info *errdetails.ErrorInfo) string {
	if info == nil {
		return ""
	}
	b, err := protojson.Marshal(info)
	if err != nil {
		return ""
	}
	return string(b)
}
