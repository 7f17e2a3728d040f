package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"padded", " warn ", slog.LevelWarn},
		{"invalid level", "LOUD", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.value); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "ERROR")
	l := NewFromEnv()
	if l.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be disabled at ERROR level")
	}
}

func TestRunIDAttached(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelDebug)

	ctx := WithRunID(context.Background(), "pw_42")
	l.Info(ctx, "run started", "steps", 100)

	out := buf.String()
	if !strings.Contains(out, "run_id=pw_42") {
		t.Errorf("expected run id in output, got %q", out)
	}
	if !strings.Contains(out, "steps=100") {
		t.Errorf("expected steps attribute in output, got %q", out)
	}
}

func TestErrorAttached(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelDebug)

	l.Error(context.Background(), "save failed", errors.New("disk full"))

	if !strings.Contains(buf.String(), "disk full") {
		t.Errorf("expected error text in output, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelWarn)

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "hidden too")
	if buf.Len() != 0 {
		t.Errorf("expected nothing below WARN, got %q", buf.String())
	}
	l.Warn(context.Background(), "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("expected warn message")
	}
}

func TestRunIDMissing(t *testing.T) {
	if id := RunID(context.Background()); id != "" {
		t.Errorf("expected empty run id, got %q", id)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("expected nil for nil error")
	}

	base := errors.New("boom")
	err := WrapError(base, "loading %s", "cfg.yaml")
	if !errors.Is(err, base) {
		t.Error("wrapped error should unwrap to original")
	}
	if err.Error() != "loading cfg.yaml: boom" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
