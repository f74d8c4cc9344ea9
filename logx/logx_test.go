package logx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"dirpx.dev/pgstate"
)

func logged(t *testing.T, f func(*zerolog.Logger)) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	f(&log)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	return m
}

func TestObject_ResultError(t *testing.T) {
	e := pgstate.NewResultError("42601", "ERROR: syntax error at or near \"SELORCT\"\n",
		pgstate.WithVerbose("ERROR: syntax error at or near \"SELORCT\"\nLINE 1: SELORCT 1\n"))

	m := logged(t, func(log *zerolog.Logger) {
		log.Error().Object("pg", Object(e)).Msg("query failed")
	})

	pg, ok := m["pg"].(map[string]any)
	if !ok {
		t.Fatalf("pg field missing: %v", m)
	}
	if pg["sqlstate"] != "42601" || pg["class"] != "42" || pg["condition"] != "SyntaxError" {
		t.Fatalf("identity fields = %v", pg)
	}
	if pg["server_sourced"] != true {
		t.Fatalf("server_sourced = %v", pg["server_sourced"])
	}
	if pg["verbose"] == nil {
		t.Fatal("captured verbose message must be logged")
	}
}

func TestObject_ClientVariant(t *testing.T) {
	m := logged(t, func(log *zerolog.Logger) {
		log.Warn().Object("pg", Object(pgstate.NewClientConnError("connection already closed"))).Msg("misuse")
	})
	pg := m["pg"].(map[string]any)
	if pg["server_sourced"] != false {
		t.Fatalf("server_sourced = %v", pg["server_sourced"])
	}
	if _, present := pg["sqlstate"]; present {
		t.Fatal("client variants carry no SQLSTATE field")
	}
}

func TestErr_WrappedAndForeign(t *testing.T) {
	inner := pgstate.NewResultError("40P01", "ERROR: deadlock detected\n")
	m := logged(t, func(log *zerolog.Logger) {
		Err(log.Error(), "err", fmt.Errorf("tx: %w", inner)).Msg("failed")
	})
	pg, ok := m["err"].(map[string]any)
	if !ok || pg["sqlstate"] != "40P01" {
		t.Fatalf("wrapped failure must expand: %v", m)
	}

	m2 := logged(t, func(log *zerolog.Logger) {
		Err(log.Error(), "err", fmt.Errorf("plain failure")).Msg("failed")
	})
	if _, isString := m2["err"].(string); !isString {
		t.Fatalf("foreign error must log as plain field: %v", m2)
	}
}
