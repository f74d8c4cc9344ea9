package httpx

import (
	"net/http/httptest"
	"strings"
	"testing"

	spb "google.golang.org/genproto/googleapis/rpc/status"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/pgstate"
	"dirpx.dev/pgstate/grpcx"
	"dirpx.dev/pgstate/mapper"
)

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m}
}

// decodeStatus parses the response body back into google.rpc.Status.
// protojson output whitespace is deliberately unstable, so tests must not
// string-match the raw body.
func decodeStatus(t *testing.T, body []byte) *spb.Status {
	t.Helper()
	var st spb.Status
	if err := protojson.Unmarshal(body, &st); err != nil {
		t.Fatalf("unmarshal body: %v\n%s", err, body)
	}
	return &st
}

func errorInfoOf(t *testing.T, st *spb.Status) *errdetails.ErrorInfo {
	t.Helper()
	for _, d := range st.Details {
		var ei errdetails.ErrorInfo
		if d.MessageIs(&ei) {
			if err := d.UnmarshalTo(&ei); err != nil {
				t.Fatalf("unmarshal ErrorInfo: %v", err)
			}
			return &ei
		}
	}
	t.Fatal("ErrorInfo detail missing")
	return nil
}

func TestWrite_UniqueViolation(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	e := pgstate.NewResultError("23505", "ERROR: duplicate key value violates unique constraint \"users_email_key\"\n")

	w.Write(rec, e, Meta{Correlation: "req-42"})

	if rec.Code != 409 {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}

	st := decodeStatus(t, rec.Body.Bytes())
	if st.Code != int32(codes.AlreadyExists) {
		t.Fatalf("body code = %d, want %d", st.Code, codes.AlreadyExists)
	}
	// message text is the rendered form, without the trailing terminator
	if strings.HasSuffix(st.Message, "\n") {
		t.Fatalf("message keeps the trailing terminator: %q", st.Message)
	}

	ei := errorInfoOf(t, st)
	if ei.Reason != "UniqueViolation" || ei.Domain != grpcx.Domain {
		t.Fatalf("ErrorInfo = %+v", ei)
	}
	if ei.Metadata[grpcx.MetaSQLState] != "23505" || ei.Metadata["correlation_id"] != "req-42" {
		t.Fatalf("ErrorInfo metadata = %+v", ei.Metadata)
	}
}

func TestWrite_RetryAfter(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	e := pgstate.NewResultError("53300", "FATAL: sorry, too many clients already\n")

	w.Write(rec, e, Meta{RetryAfterSeconds: 30})

	if rec.Code != 503 {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "30" {
		t.Fatalf("Retry-After = %q", got)
	}

	st := decodeStatus(t, rec.Body.Bytes())
	var found bool
	for _, d := range st.Details {
		var ri errdetails.RetryInfo
		if d.MessageIs(&ri) {
			if err := d.UnmarshalTo(&ri); err != nil {
				t.Fatalf("unmarshal RetryInfo: %v", err)
			}
			if ri.RetryDelay.GetSeconds() != 30 {
				t.Fatalf("retry delay = %v", ri.RetryDelay)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("RetryInfo detail missing:\n%s", rec.Body.String())
	}
}

func TestWrite_UnknownCode(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	e := pgstate.NewResultError("ZZ000", "ERROR: something new\n")

	w.Write(rec, e, Meta{})

	if rec.Code != 500 {
		t.Fatalf("sentinel must resolve to 500, got %d", rec.Code)
	}
	ei := errorInfoOf(t, decodeStatus(t, rec.Body.Bytes()))
	if ei.Reason != "UnknownSQLState" {
		t.Fatalf("reason = %q", ei.Reason)
	}
}

func TestWrite_NilError(t *testing.T) {
	w := newWriter(t)
	rec := httptest.NewRecorder()
	w.Write(rec, nil, Meta{})
	if rec.Body.Len() != 0 || rec.Code != 200 {
		t.Fatalf("nil error must write nothing: code=%d body=%q", rec.Code, rec.Body.String())
	}
}
