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

// Package httpx renders classified PostgreSQL failures as HTTP responses
// with a google.rpc.Status JSON body.
package httpx

import (
	"net/http"
	"strconv"
	"time"

	spb "google.golang.org/genproto/googleapis/rpc/status"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/pgstate"
	"dirpx.dev/pgstate/apis"
	"dirpx.dev/pgstate/grpcx"
)

// Meta carries extra context that the HTTP layer can add on top of the
// classified error. All fields are optional and typically come from request
// context, headers, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer is a thin adapter that knows how to turn a *pgstate.ResultError into
// an HTTP response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the transport statuses via the Mapper and writes a
// google.rpc.Status JSON body: the gRPC code number, the user-facing message,
// and a google.rpc.ErrorInfo detail carrying the condition name and the raw
// SQLSTATE identities. The HTTP status line comes from the same resolution.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error and Meta is exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, e *pgstate.ResultError, meta Meta) {
	if e == nil {
		return
	}

	st := w.Mapper.Status(e.ErrorClass(), e.ErrorCode())

	md := map[string]string{
		grpcx.MetaSQLState: e.SQLState(),
		grpcx.MetaClass:    string(e.ErrorClass()),
	}
	if meta.Correlation != "" {
		md["correlation_id"] = meta.Correlation
	}
	if meta.TraceID != "" {
		md["trace_id"] = meta.TraceID
	}
	if meta.SpanID != "" {
		md["span_id"] = meta.SpanID
	}

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: e.Error(),
	}
	if anyInfo, err := anypb.New(&errdetails.ErrorInfo{
		Reason:   e.Name(),
		Domain:   grpcx.Domain,
		Metadata: md,
	}); err == nil {
		body.Details = append(body.Details, anyInfo)
	}
	if meta.RetryAfterSeconds > 0 {
		if anyRetry, err := anypb.New(&errdetails.RetryInfo{
			RetryDelay: durationpb.New(time.Duration(meta.RetryAfterSeconds) * time.Second),
		}); err == nil {
			body.Details = append(body.Details, anyRetry)
		}
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)

	// IMPORTANT: protobuf JSON through protojson must be used to ensure
	// proper serialization of nested structures, field names (json_name),
	// and well-known types like Any.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false, // use json_name
	}).Marshal(body)
	_, _ = rw.Write(b)
}
