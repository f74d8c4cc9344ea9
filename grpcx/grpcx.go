/*
   Copyright 2025 The DIRPX Authors

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

// Package grpcx maps classified PostgreSQL failures onto gRPC status errors
// carrying google.rpc.ErrorInfo details.
package grpcx

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/pgstate"
	"dirpx.dev/pgstate/apis"
)

// Domain is the value of ErrorInfo.Domain for conditions originating in the
// PostgreSQL taxonomy.
const Domain = "postgresql.org"

// ErrorInfo metadata keys.
const (
	MetaSQLState = "sqlstate"
	MetaClass    = "class"
)

// MetaFn extracts extra ErrorInfo metadata from the context and the
// classified error. Returned entries are merged on top of the standard
// sqlstate/class keys; it may return nil.
type MetaFn func(ctx context.Context, e *pgstate.ResultError) map[string]string

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *pgstate.ResultError into gRPC status errors with google.rpc.ErrorInfo
// details.
//
// The provided apis.Mapper resolves the SQLSTATE identities into the
// transport status code. ErrorInfo carries the condition name as the Reason
// ("UniqueViolation", "SyntaxError", ...), Domain as the error domain, and
// the raw identities in Metadata, so clients can branch without parsing
// message text.
//
// The optional MetaFn can add request-scoped metadata (correlation IDs,
// trace IDs). If nil, only the standard keys are set. Errors that carry no
// ResultError anywhere in their chain are returned as-is.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var de *pgstate.ResultError
		if !errors.As(err, &de) {
			// Not ours — return as-is.
			return nil, err
		}

		st := m.Status(de.ErrorClass(), de.ErrorCode())

		meta := map[string]string{
			MetaSQLState: de.SQLState(),
			MetaClass:    string(de.ErrorClass()),
		}
		if metaFn != nil {
			for k, v := range metaFn(ctx, de) {
				meta[k] = v
			}
		}

		ei := &errdetails.ErrorInfo{
			Reason:   de.Name(),
			Domain:   Domain,
			Metadata: meta,
		}

		base := gstatus.New(st.GRPC, de.Error())

		// Try to attach ErrorInfo as details. If it fails — return base.
		if anyInfo, err := anypb.New(ei); err == nil {
			if with, err := base.WithDetails(anyInfo); err == nil {
				return nil, with.Err()
			}
		}

		return nil, base.Err()
	}
}

// ExtractErrorInfo pulls google.rpc.ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}
