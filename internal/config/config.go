package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/hintnav/internal/app"
	"github.com/atomicstack/hintnav/internal/keymap"
	"github.com/atomicstack/hintnav/internal/label"
	"github.com/atomicstack/hintnav/internal/ui"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWidth        = "HINTNAV_WIDTH"
	envHeight       = "HINTNAV_HEIGHT"
	envAlphabet     = "HINTNAV_ALPHABET"
	envBindings     = "HINTNAV_BINDINGS"
	envDefocusDelay = "HINTNAV_DEFOCUS_DELAY"
	envShowFooter   = "HINTNAV_FOOTER"
	envVerbose      = "HINTNAV_VERBOSE"
	envTrace        = "HINTNAV_TRACE"
	envLogFile      = "HINTNAV_LOG_FILE"
)

const defaultDefocusDelay = 10 * time.Millisecond

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("hintnav", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	alphabet := fs.String("alphabet", envOrDefault(env, envAlphabet, label.DefaultChars), "hint characters in priority order")
	bindings := fs.String("bindings", envOrDefault(env, envBindings, ""), "path to a YAML key binding file, reloaded on change")
	defocus := fs.Duration("defocus-delay", envOrDuration(env, envDefocusDelay, defaultDefocusDelay), "delay before Escape moves focus out of a text entry")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the key help footer at start-up")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *defocus < 0 {
		return Config{}, fmt.Errorf("defocus-delay must be >= 0 (got %s)", *defocus)
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			Alphabet:     *alphabet,
			BindingsPath: *bindings,
			DefocusDelay: *defocus,
			ShowFooter:   *footer,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"alphabet":     *alphabet,
			"bindings":     *bindings,
			"defocusDelay": defocus.String(),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks the hint alphabet and, when one is configured, that the
// binding file loads and names only known actions.
func Validate(cfg Config) error {
	if _, err := label.ParseAlphabet(cfg.App.Alphabet); err != nil {
		return fmt.Errorf("alphabet: %w", err)
	}
	if cfg.App.BindingsPath == "" {
		return nil
	}
	bindings, err := keymap.LoadFile(cfg.App.BindingsPath)
	if err != nil {
		return err
	}
	known := make(map[string]keymap.Handler)
	for _, name := range ui.Actions() {
		known[name] = func() bool { return false }
	}
	return keymap.Validate(bindings, known)
}
