package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "warn",
		Format:      "text",
		ServiceName: "test-service",
		Version:     "dev",
		Environment: "test",
	}

	InitLoggerWithWriter(config, &buf)

	Debug("should be filtered")
	Info("should be filtered too")
	Warn("should appear")

	out := buf.String()
	if bytes.Contains(buf.Bytes(), []byte("filtered")) {
		t.Errorf("Expected debug/info to be filtered, got: %s", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("should appear")) {
		t.Errorf("Expected warn to appear, got: %s", out)
	}
}

func TestLogLevelParsing(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for in, want := range cases {
		cfg := Config{Level: in}
		if got := cfg.LogLevel(); got != want {
			t.Errorf("LogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Error("Expected no request ID on a fresh context")
	}

	id := GenerateRequestID()
	if id == "" {
		t.Fatal("Expected a non-empty request ID")
	}

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	if !ok || got != id {
		t.Errorf("RequestIDFromContext = (%q, %v), want (%q, true)", got, ok, id)
	}
}

func TestFromContextIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	FromContext(ctx).Info("hello")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["request_id"] != "req-123" {
		t.Errorf("Expected request_id=req-123, got %v", logEntry["request_id"])
	}
}
