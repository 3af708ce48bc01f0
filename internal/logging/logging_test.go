package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})

	Trace("ignored", nil)
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("hint.show", map[string]interface{}{"count": 2})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected JSON entry, got %q: %v", string(data), err)
	}
	if entry.Event != "hint.show" {
		t.Fatalf("expected event hint.show, got %q", entry.Event)
	}
	if entry.Payload["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", entry.Payload["count"])
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("first failure"))
	Error(errors.New("second failure"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "first failure") || !strings.Contains(text, "second failure") {
		t.Fatalf("expected both errors in log, got %q", text)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
