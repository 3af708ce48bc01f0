package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/hintnav/internal/keymap"
	"github.com/atomicstack/hintnav/internal/label"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Alphabet != label.DefaultChars {
		t.Fatalf("expected default alphabet, got %q", cfg.App.Alphabet)
	}
	if cfg.App.DefocusDelay != 10*time.Millisecond {
		t.Fatalf("expected 10ms defocus delay, got %s", cfg.App.DefocusDelay)
	}
	if cfg.App.BindingsPath != "" || cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsEnvironmentAndFlags(t *testing.T) {
	env := []string{
		"HINTNAV_ALPHABET=jkl",
		"HINTNAV_DEFOCUS_DELAY=25ms",
		"HINTNAV_WIDTH=90",
		"HINTNAV_TRACE=true",
		"HINTNAV_LOG_FILE=/tmp/hintnav.log",
		"MALFORMED",
	}
	cfg, err := LoadArgs([]string{"--width", "100", "--footer"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Alphabet != "jkl" || cfg.App.DefocusDelay != 25*time.Millisecond {
		t.Fatalf("expected environment values, got %#v", cfg.App)
	}
	if cfg.App.Width != 100 {
		t.Fatalf("expected flag to override env width, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/hintnav.log" {
		t.Fatalf("unexpected config %#v", cfg)
	}
	if cfg.Flags["defocusDelay"] != "25ms" || cfg.Flags["width"] != "100" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
	if len(cfg.Args) != 3 {
		t.Fatalf("expected args recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresBadEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"HINTNAV_HEIGHT=tall", "HINTNAV_DEFOCUS_DELAY=soon", "HINTNAV_VERBOSE=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.DefocusDelay != 10*time.Millisecond || cfg.App.Verbose {
		t.Fatalf("expected fallbacks, got %#v", cfg.App)
	}
}

func TestLoadArgsRejectsNegativeValues(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--defocus-delay", "-5ms"}, nil); err == nil {
		t.Fatalf("expected error for negative delay")
	}
	if _, err := LoadArgs([]string{"--nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestValidateAlphabet(t *testing.T) {
	cfg, _ := LoadArgs([]string{"--alphabet", "aa"}, nil)
	if err := Validate(cfg); !errors.Is(err, label.ErrDuplicateChar) {
		t.Fatalf("expected duplicate char error, got %v", err)
	}
	cfg, _ = LoadArgs([]string{"--alphabet", "a"}, nil)
	if err := Validate(cfg); !errors.Is(err, label.ErrAlphabetTooShort) {
		t.Fatalf("expected too short error, got %v", err)
	}
}

func TestValidateBindingsFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("bindings:\n  q: quit\n  j: list-down\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, _ := LoadArgs([]string{"--bindings", good}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid bindings, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("bindings:\n  x: explode\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, _ = LoadArgs([]string{"--bindings", bad}, nil)
	if err := Validate(cfg); !errors.Is(err, keymap.ErrUnknownAction) {
		t.Fatalf("expected unknown action error, got %v", err)
	}

	cfg, _ = LoadArgs([]string{"--bindings", filepath.Join(dir, "missing.yaml")}, nil)
	if err := Validate(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing file error, got %v", err)
	}
}
