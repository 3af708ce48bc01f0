package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/hintnav/internal/app"
	"github.com/atomicstack/hintnav/internal/config"
	"github.com/atomicstack/hintnav/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:        80,
			Height:       24,
			Alphabet:     "asdf",
			BindingsPath: "bindings.yaml",
			DefocusDelay: 10 * time.Millisecond,
			ShowFooter:   true,
			Verbose:      true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"width":    "80",
			"height":   "24",
			"alphabet": "asdf",
			"bindings": "bindings.yaml",
			"footer":   "true",
			"verbose":  "true",
		},
		Args: []string{"--alphabet", "asdf"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["alphabet"] != "asdf" {
		t.Fatalf("expected alphabet flag %q, got %v", "asdf", flagsValue["alphabet"])
	}
	if flagsValue["bindings"] != "bindings.yaml" {
		t.Fatalf("expected bindings flag, got %v", flagsValue["bindings"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["verbose"] != "true" {
		t.Fatalf("expected verbose flag true, got %v", flagsValue["verbose"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestTraceStartupOnlyWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	logging.Configure(path)
	t.Cleanup(func() {
		logging.Configure("")
		logging.SetTraceEnabled(false)
	})

	traceStartup(config.Config{})
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no trace while disabled, got %v", err)
	}

	logging.SetTraceEnabled(true)
	traceStartup(config.Config{})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `"event":"app.start"`) || !strings.Contains(text, path) {
		t.Fatalf("expected start entry with log path, got %q", text)
	}
}
