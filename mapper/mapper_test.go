package mapper

import (
	"strings"
	"sync"
	"testing"

	"dirpx.dev/pgstate/apis"
	"dirpx.dev/pgstate/sqlstate"
	"google.golang.org/grpc/codes"
)

func TestDefaults_HTTP_GRPC(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Spot-check a few canonical class defaults from defaults.go
	check := func(cl sqlstate.Class, c sqlstate.Code, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(cl, c)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q, %q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				cl, c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(sqlstate.ClassDataException, sqlstate.DivisionByZero, 400, codes.InvalidArgument)
	check(sqlstate.ClassConnectionException, sqlstate.ConnectionFailure, 503, codes.Unavailable)
	check(sqlstate.ClassInvalidCatalogName, sqlstate.InvalidCatalogName, 404, codes.NotFound)
	check(sqlstate.ClassTransactionRollback, sqlstate.SerializationFailure, 409, codes.Aborted)
}

func TestBuiltinCodeRules(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// The library ships exact-code rules where the class is too coarse.
	if st := m.Status(sqlstate.ClassIntegrityConstraintViolation, sqlstate.UniqueViolation); st.HTTP != 409 || st.GRPC != codes.AlreadyExists {
		t.Fatalf("23505: got %+v", st)
	}
	if st := m.Status(sqlstate.ClassSyntaxErrorOrAccessRuleViolation, sqlstate.InsufficientPrivilege); st.HTTP != 403 || st.GRPC != codes.PermissionDenied {
		t.Fatalf("42501: got %+v", st)
	}
	if st := m.Status(sqlstate.ClassOperatorIntervention, sqlstate.QueryCanceled); st.HTTP != 408 || st.GRPC != codes.Canceled {
		t.Fatalf("57014: got %+v", st)
	}
}

func TestSentinels_Fallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(sqlstate.UnknownClass, sqlstate.UnknownCode)
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("sentinels must fall through to the fallback; got %+v", st)
	}
}

func TestPriority_OverrideOverPatternOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(sqlstate.ClassTransactionRollback, 409),  // default
		WithHTTPPattern("40P", 599),                              // pattern
		WithHTTPOverride(sqlstate.DeadlockDetected, 418),         // override
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
	if st.HTTP != 418 {
		t.Fatalf("override must win; got %d, want 418", st.HTTP)
	}
}

func TestPriority_OverrideOverPatternOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(sqlstate.ClassTransactionRollback, int(codes.Aborted)),
		WithGRPCPattern("40P", int(codes.Internal)),
		WithGRPCOverride(sqlstate.DeadlockDetected, int(codes.Unavailable)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
	if st.GRPC != codes.Unavailable {
		t.Fatalf("override must win; got %v, want %v", st.GRPC, codes.Unavailable)
	}
}

func TestPattern_LPM(t *testing.T) {
	m, err := New(
		WithHTTPPattern("22", 460),
		WithHTTPPattern("2200", 461),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// LPM should pick the longer "2200"
	st := m.Status(sqlstate.ClassDataException, sqlstate.NullValueNotAllowed) // 22004
	if st.HTTP != 461 {
		t.Fatalf("LPM failed: got %d, want 461", st.HTTP)
	}
	// "22012" shares only the two-character prefix
	st2 := m.Status(sqlstate.ClassDataException, sqlstate.DivisionByZero)
	if st2.HTTP != 460 {
		t.Fatalf("shorter prefix should apply: got %d, want 460", st2.HTTP)
	}
}

func TestWildcard_OneCharacter(t *testing.T) {
	m, err := New(
		WithHTTPPattern("40___", 502),
		WithHTTPPattern("40P01", 409), // exact should win at same depth
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := m.Status(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
	if a.HTTP != 409 {
		t.Fatalf("exact must beat wildcard; got %d", a.HTTP)
	}
	b := m.Status(sqlstate.ClassTransactionRollback, sqlstate.SerializationFailure)
	if b.HTTP != 502 {
		t.Fatalf("wildcard match failed; got %d, want 502", b.HTTP)
	}
	// wildcards never match the sentinel — '?' is outside the alphabet
	c := m.Status(sqlstate.UnknownClass, sqlstate.UnknownCode)
	if c.HTTP == 502 {
		t.Fatalf("wildcard must not match the unknown sentinel")
	}
}

func TestNormalization_In_Options(t *testing.T) {
	m, err := New(
		WithHTTPPattern("  40p__  ", 599),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
	if st.HTTP != 599 {
		t.Fatalf("normalized pattern should match; got %d", st.HTTP)
	}
}

func TestInvalidPattern_Errors(t *testing.T) {
	if _, err := New(WithHTTPPattern("", 500)); err == nil {
		t.Fatal("empty pattern must fail the build")
	}
	if _, err := New(WithHTTPPattern("_____", 500)); err == nil {
		t.Fatal("all-wildcard pattern must fail the build")
	}
	if _, err := New(WithGRPCPattern("235051", int(codes.Internal))); err == nil {
		t.Fatal("overlong pattern must fail the build")
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	m, err := New(
		WithHTTPPattern("40P", 409),
		WithGRPCPattern("40P", int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	exp := m.Explain(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
	if !strings.Contains(exp, `source=pattern`) {
		t.Fatalf("Explain must include source=pattern:\n%s", exp)
	}
	if !strings.Contains(exp, `pattern="40P"`) {
		t.Fatalf("Explain must include matched pattern:\n%s", exp)
	}
	if !strings.Contains(exp, `grpc:`) || !strings.Contains(exp, `http:`) {
		t.Fatalf("Explain must render both transports:\n%s", exp)
	}
}

func TestConcurrency_MapperStatus(t *testing.T) {
	m, err := New(
		WithHTTPPattern("40P", 409),
		WithHTTPOverride(sqlstate.QueryCanceled, 499),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = m.Status(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
				_ = m.Status(sqlstate.ClassOperatorIntervention, sqlstate.QueryCanceled)
				_ = m.Status(sqlstate.UnknownClass, sqlstate.UnknownCode)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMapperStatus_Default(t *testing.B) {
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(sqlstate.ClassDataException, sqlstate.DivisionByZero)
	}
}

func BenchmarkMapperStatus_PatternHit(t *testing.B) {
	m, _ := New(
		WithHTTPPattern("40P", 409),
		WithGRPCPattern("40P", int(codes.Aborted)),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
	}
}

func BenchmarkMapperStatus_Override(t *testing.B) {
	m, _ := New(
		WithHTTPOverride(sqlstate.DeadlockDetected, 418),
		WithGRPCOverride(sqlstate.DeadlockDetected, int(codes.Unavailable)),
	)
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(sqlstate.ClassTransactionRollback, sqlstate.DeadlockDetected)
	}
}

func BenchmarkMapperStatus_Fallback(t *testing.B) {
	m, _ := New()
	t.ReportAllocs()
	for i := 0; i < t.N; i++ {
		_ = m.Status(sqlstate.UnknownClass, sqlstate.UnknownCode)
	}
}

// Ensure mapper implements apis.Mapper
func TestMapper_InterfaceSatisfaction(t *testing.T) {
	var _ apis.Mapper = (*mapper)(nil)
}
