package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func jsonLogger(level string, buf *bytes.Buffer) *Logger {
	return NewWithWriter(&Config{Level: level, Format: "json"}, "test", buf)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Component() != "test-svc" {
		t.Errorf("expected component 'test-svc', got %q", l.Component())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("invalid-level", &buf)
	l.Debug("hidden")
	l.Info("shown")
	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["message"] != "shown" {
		t.Errorf("invalid level should fall back to info, got %v", lines)
	}
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("warn", &buf)
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines at warn level, got %d", len(lines))
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("unexpected levels %v", lines)
	}
}

func TestFieldsAreWritten(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("debug", &buf)
	l.Warn("element failed", Fields(FieldSequence, "lines", FieldIndex, 3))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0][FieldSequence] != "lines" {
		t.Errorf("sequence = %v", lines[0][FieldSequence])
	}
	if lines[0][FieldIndex] != float64(3) {
		t.Errorf("index = %v", lines[0][FieldIndex])
	}
	if lines[0][FieldComponent] != "test" {
		t.Errorf("component = %v", lines[0][FieldComponent])
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	// must not panic
	l.Error("dropped", Fields("k", "v"))
	l.WithComponent("x").Warn("dropped")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "json"}, "", &buf)
	cl := l.WithComponent("handler")
	if cl.Component() != "handler" {
		t.Errorf("component = %q", cl.Component())
	}
	cl.Info("hi")
	if lines := decodeLines(t, &buf); lines[0][FieldComponent] != "handler" {
		t.Errorf("component field = %v", lines[0][FieldComponent])
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("info", &buf).
		WithFields(map[string]interface{}{"key": "value"}).
		WithError(fmt.Errorf("boom"))
	l.Info("msg")

	lines := decodeLines(t, &buf)
	if lines[0]["key"] != "value" || lines[0][FieldError] != "boom" {
		t.Errorf("unexpected line %v", lines[0])
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("info", &buf)

	if got := l.WithContext(context.Background()); got != l {
		t.Error("expected same logger without an active span")
	}

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	l.WithContext(ctx).Info("traced")
	lines := decodeLines(t, &buf)
	if lines[0][FieldTraceID] != span.SpanContext().TraceID().String() {
		t.Errorf("trace_id = %v", lines[0][FieldTraceID])
	}
	if lines[0][FieldSpanID] != span.SpanContext().SpanID().String() {
		t.Errorf("span_id = %v", lines[0][FieldSpanID])
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "svc", &buf)
	l.Warn("careful")
	out := buf.String()
	if !strings.Contains(out, "[WRN]") || !strings.Contains(out, "careful") {
		t.Errorf("unexpected console output %q", out)
	}
}

func TestInitAndGlobal(t *testing.T) {
	Init(&Config{Level: "info", Format: "json", Output: "stdout"})
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}

	custom := NewNop()
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
	// These should not panic
	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
	if WithComponent("x") == nil {
		t.Error("expected component logger")
	}

	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestRegisterAndGet(t *testing.T) {
	l := NewNop()
	Register("my-component", l)
	if Get("my-component") != l {
		t.Error("expected Get to return the registered logger")
	}
	if got := Get("unregistered"); got == nil || got.Component() != "unregistered" {
		t.Errorf("expected tagged global logger, got %v", got)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stderr" {
		t.Errorf("expected output 'stderr', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"valid pretty", Config{Level: "trace", Format: "pretty"}, false},
		{"invalid level", Config{Level: "bad", Format: "json"}, true},
		{"invalid format", Config{Level: "info", Format: "xml"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		name     string
		input    []interface{}
		expected map[string]interface{}
	}{
		{
			"key-value pairs",
			[]interface{}{"op", "save", "id", 42},
			map[string]interface{}{"op": "save", "id": 42},
		},
		{
			"odd number of args",
			[]interface{}{"op", "save", "trailing"},
			map[string]interface{}{"op": "save"},
		},
		{
			"empty",
			[]interface{}{},
			map[string]interface{}{},
		},
		{
			"non-string key skipped",
			[]interface{}{123, "value", "key", "val"},
			map[string]interface{}{"key": "val"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Fields(tc.input...)
			if len(got) != len(tc.expected) {
				t.Errorf("Fields() = %v, expected %v", got, tc.expected)
			}
			for k, v := range tc.expected {
				if got[k] != v {
					t.Errorf("Fields[%q] = %v, expected %v", k, got[k], v)
				}
			}
		})
	}
}

func TestErrorFields(t *testing.T) {
	fields := ErrorFields("while_ok", fmt.Errorf("something broke"))
	if fields[FieldOperation] != "while_ok" {
		t.Errorf("expected operation 'while_ok', got %v", fields[FieldOperation])
	}
	if fields[FieldError] != "something broke" {
		t.Errorf("expected error 'something broke', got %v", fields[FieldError])
	}
}

func TestDurationFields(t *testing.T) {
	fields := DurationFields("drain", 150*time.Millisecond)
	if fields[FieldOperation] != "drain" {
		t.Errorf("expected operation 'drain', got %v", fields[FieldOperation])
	}
	if fields[FieldDuration] != int64(150) {
		t.Errorf("expected duration 150, got %v", fields[FieldDuration])
	}
}
