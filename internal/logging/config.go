// Package logging configures the process-wide zerolog logger used by
// framepeek and the grpcframe package's callers. It is deliberately small:
// one profile for normal runs, one for tests, and three environment
// variables for overriding either.
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "GRPCDEFRAME_LOG_LEVEL"
	EnvLogTimestamp = "GRPCDEFRAME_LOG_TIMESTAMP"
	EnvLogNoColor   = "GRPCDEFRAME_LOG_NOCOLOR"
)

// Profile selects the default logging posture before environment overrides
// are applied.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type config struct {
	level     zerolog.Level
	timestamp bool
	noColor   bool
}

var configureOnce sync.Once

// ConfigureRuntime sets up the default logger for framepeek and other
// long-running callers: info level, timestamps on, colorized console
// output.
func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

// ConfigureTests sets up the logger for _test.go files: debug level, no
// timestamps, so test output stays diffable.
func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure applies profile, then any environment overrides, to the global
// zerolog logger. Safe to call more than once; only the first call takes
// effect.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg := defaultConfig(profile)
		applyEnvOverrides(&cfg)

		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339, NoColor: cfg.noColor}
		logger := zerolog.New(out).Level(cfg.level).With().Str("app", "grpcdeframe").Logger()
		if cfg.timestamp {
			logger = logger.With().Timestamp().Logger()
		}
		log.Logger = logger
	})
}

func defaultConfig(profile Profile) config {
	switch profile {
	case ProfileTest:
		return config{level: zerolog.DebugLevel, timestamp: false}
	default:
		return config{level: zerolog.InfoLevel, timestamp: true}
	}
}

func applyEnvOverrides(cfg *config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		cfg.timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.noColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
