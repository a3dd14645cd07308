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

package grpcx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dispatchx.dev/dxerrors"
	"dispatchx.dev/dxerrors/code"
	"dispatchx.dev/dxerrors/grpcx"
	"dispatchx.dev/dxerrors/mapper"
)

func invoke(t *testing.T, handlerErr error) error {
	t.Helper()

	m, err := mapper.New()
	require.NoError(t, err)

	intercept := grpcx.UnaryServerInterceptor(m)
	handler := func(ctx context.Context, req any) (any, error) {
		return nil, handlerErr
	}

	_, err = intercept(context.Background(), struct{}{}, &grpc.UnaryServerInfo{FullMethod: "/dispatch.v1.Dispatch/Handle"}, handler)
	return err
}

func TestUnaryServerInterceptor_PassesThroughSuccess(t *testing.T) {
	m, err := mapper.New()
	require.NoError(t, err)

	intercept := grpcx.UnaryServerInterceptor(m)
	resp, err := intercept(context.Background(), struct{}{}, &grpc.UnaryServerInfo{}, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestUnaryServerInterceptor_CodedError(t *testing.T) {
	err := invoke(t, dxerrors.NewAuthorizationError("token rejected", errors.New("expired")))
	require.Error(t, err)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, st.Code())

	info, ok := grpcx.ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, string(code.Authorization), info.GetReason())
	assert.Equal(t, grpcx.Domain, info.GetDomain())
	assert.Equal(t, "expired", info.GetMetadata()["original"])
}

func TestUnaryServerInterceptor_ForeignErrorBecomesUnknown(t *testing.T) {
	err := invoke(t, errors.New("socket closed"))
	require.Error(t, err)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unknown, st.Code())

	info, ok := grpcx.ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, string(code.Unknown), info.GetReason())
	assert.Equal(t, "socket closed", info.GetMetadata()["original"])
}

func TestUnaryServerInterceptor_PropertyMetadata(t *testing.T) {
	err := invoke(t, dxerrors.NewContextMissingPropertyError("team_id", "team_id absent from context"))
	require.Error(t, err)

	info, ok := grpcx.ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, "team_id", info.GetMetadata()["missing_property"])
}

func TestUnaryServerInterceptor_AggregateMetadata(t *testing.T) {
	err := invoke(t, dxerrors.NewMultipleListenerError([]error{
		errors.New("first"),
		errors.New("second"),
	}))
	require.Error(t, err)

	info, ok := grpcx.ExtractInfo(err)
	require.True(t, ok)
	assert.Equal(t, "2", info.GetMetadata()["originals_count"])
}

func TestExtractInfo_NoDetail(t *testing.T) {
	_, ok := grpcx.ExtractInfo(errors.New("plain"))
	assert.False(t, ok)

	_, ok = grpcx.ExtractInfo(nil)
	assert.False(t, ok)
}

func TestFormatInfo(t *testing.T) {
	err := invoke(t, dxerrors.NewReceiverAuthenticityError("signature mismatch"))
	require.Error(t, err)

	info, ok := grpcx.ExtractInfo(err)
	require.True(t, ok)

	out := grpcx.FormatInfo(info)
	assert.Contains(t, out, string(code.ReceiverAuthenticity))
	assert.Contains(t, out, grpcx.Domain)

	assert.Empty(t, grpcx.FormatInfo(nil))
}
