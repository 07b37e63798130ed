package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info().Str("key", "value").Msg("test message")

	out := buf.String()
	if !strings.Contains(out, "test message") {
		t.Errorf("expected log output to contain message, got %q", out)
	}
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("expected log output to contain field, got %q", out)
	}
}

func TestNewIncludesServiceName(t *testing.T) {
	log := New("transaction-api")
	// Smoke test only: the console writer goes to stdout, so just make
	// sure logging does not panic.
	log.Debug().Msg("startup")
}
