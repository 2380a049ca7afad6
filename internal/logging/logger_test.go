package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"resumetailor/internal/services"
)

func TestNewConsoleLoggerWritesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	NewComponentLogger(logger, "tailor").Info("request issued", String("endpoint", "http://localhost"))
	line := buf.String()
	if !strings.Contains(line, "[tailor]") {
		t.Fatalf("expected component tag in %q", line)
	}
	if !strings.Contains(line, "request issued") {
		t.Fatalf("expected message in %q", line)
	}
	if !strings.Contains(line, "endpoint=http://localhost") {
		t.Fatalf("expected attr in %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseLevelDefaults(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info line should be filtered: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn line missing: %q", buf.String())
	}
}

func TestWithContextStampsIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := services.WithSubmissionID(context.Background(), "sub-1")
	ctx = services.WithStage(ctx, "analyzing")
	WithContext(ctx, logger).Info("advance")
	line := buf.String()
	if !strings.Contains(line, "submission_id=sub-1") || !strings.Contains(line, "stage=analyzing") {
		t.Fatalf("expected context attrs in %q", line)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("should not panic", Error(nil))
}
