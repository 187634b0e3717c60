package logging

import (
	"net/http"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testTraceparent = "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01"

func TestParseTraceparent(t *testing.T) {
	h := http.Header{}
	h.Set(traceparentHeader, testTraceparent)

	tc, ok := parseTrace(h)
	if !ok {
		t.Fatal("expected traceparent to parse")
	}
	if tc.traceID != "3d23d071b5bfd6579171efce907685cb" || tc.spanID != "08f067aa0ba902b7" || !tc.sampled {
		t.Fatalf("unexpected trace context: %+v", tc)
	}
}

func TestParseCloudTraceFallback(t *testing.T) {
	h := http.Header{}
	h.Set(cloudTraceHeader, "105445aa7843bc8bf206b12000100000/1;o=1")

	tc, ok := parseTrace(h)
	if !ok {
		t.Fatal("expected X-Cloud-Trace-Context to parse")
	}
	if tc.traceID != "105445aa7843bc8bf206b12000100000" || tc.spanID != "1" || !tc.sampled {
		t.Fatalf("unexpected trace context: %+v", tc)
	}
}

func TestParseTraceInvalid(t *testing.T) {
	h := http.Header{}
	h.Set(traceparentHeader, "invalid")
	if _, ok := parseTrace(h); ok {
		t.Fatal("expected invalid header to be rejected")
	}
}

func TestTraceFieldsRequireProjectID(t *testing.T) {
	tc := traceContext{traceID: "abc", spanID: "def", sampled: true}
	if fields := traceFields(tc, ""); fields != nil {
		t.Fatalf("expected nil fields without project, got %v", fields)
	}
	fields := traceFields(tc, "test-project")
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].String != "projects/test-project/traces/abc" {
		t.Fatalf("unexpected trace resource: %+v", fields[0])
	}
}

func TestLoggerWithTraceAddsFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	tc := traceContext{traceID: "abc", spanID: "def", sampled: false}

	loggerWithTrace(zap.New(core), tc, "test-project", "req-123").Info("hello")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["requestId"] != "req-123" {
		t.Fatalf("requestId mismatch: %+v", fields)
	}
	if fields["logging.googleapis.com/trace"] != "projects/test-project/traces/abc" {
		t.Fatalf("trace mismatch: %+v", fields)
	}
	if fields["logging.googleapis.com/trace_sampled"] != false {
		t.Fatalf("trace_sampled mismatch: %+v", fields)
	}
}

func TestLoggerWithTraceNilBase(t *testing.T) {
	if l := loggerWithTrace(nil, traceContext{}, "", ""); l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "", "value", "other"); got != "value" {
		t.Fatalf("expected 'value', got %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
