package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoggerWritesEvents(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "grid-1")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	err = logger.Info(CategoryReconcile, "update", "reconciled tracks", map[string]any{
		"before": 2,
		"after":  3,
	})
	if err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "events.jsonl"))
	if err != nil {
		t.Fatalf("reading event log: %v", err)
	}

	var event Event
	if err := json.Unmarshal(bytes.TrimSpace(data), &event); err != nil {
		t.Fatalf("unmarshal event: %v", err)
	}

	if event.Category != CategoryReconcile {
		t.Errorf("Category = %s, want %s", event.Category, CategoryReconcile)
	}
	if event.EventType != "update" {
		t.Errorf("EventType = %s, want update", event.EventType)
	}
	if event.GridID != "grid-1" {
		t.Errorf("GridID = %s, want grid-1", event.GridID)
	}
	if event.Details["after"] != float64(3) {
		t.Errorf("Details[after] = %v, want 3", event.Details["after"])
	}
}

func TestLoggerErrorMirror(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir, "grid-2")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Error(CategoryLayout, "capacity", "too many tracks", nil)
	logger.Info(CategoryLayout, "recompute", "fine", nil)
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "errors.jsonl"))
	if err != nil {
		t.Fatalf("reading error log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("error log lines = %d, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "capacity") {
		t.Errorf("error log missing event: %q", lines[0])
	}
}

func TestLoggerMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "grid-3")
	logger.SetMinLevel(LevelWarn)

	logger.Debug(CategoryBinder, "bind", "ignored", nil)
	logger.Info(CategoryBinder, "bind", "ignored", nil)
	logger.Warn(CategoryBinder, "bind", "kept", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("logged lines = %d, want 1", len(lines))
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	if err := logger.Info(CategorySurface, "attach", "no-op", nil); err != nil {
		t.Errorf("nil logger Info() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("nil logger Close() error = %v", err)
	}
}
