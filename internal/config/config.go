// Package config loads the settings for framepeek, the demo CLI built on
// top of internal/grpcframe. Nothing in this package is part of the
// deframer's own public API: the library takes plain Go values (Limits,
// a Decompressor), never a config file, environment variable, or flag.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings is framepeek's on-disk configuration.
type Settings struct {
	// Addr is the TCP address framepeek listens on.
	Addr string `toml:"addr"`

	// MaxPayloadSize bounds a single frame's declared payload length, in
	// bytes, passed through to grpcframe.Limits.
	MaxPayloadSize uint32 `toml:"max_payload_size"`

	// EnableFlate wires a FlateDecompressor into the FrameDecoder so
	// compressed frames are accepted rather than rejected with
	// ErrNoDecompressor.
	EnableFlate bool `toml:"enable_flate"`

	// MetricsAddr, when non-empty, serves Prometheus metrics over HTTP at
	// /metrics on this address.
	MetricsAddr string `toml:"metrics_addr"`
}

// DefaultSettings returns framepeek's settings before any file is loaded.
func DefaultSettings() Settings {
	return Settings{
		Addr:           ":9090",
		MaxPayloadSize: 4 << 20,
		EnableFlate:    false,
		MetricsAddr:    "",
	}
}

// LoadSettings reads and parses a TOML settings file, applying it on top of
// DefaultSettings for any field the file omits.
func LoadSettings(path string) (Settings, error) {
	cfg := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Validate checks that cfg is fit to start framepeek with.
func Validate(cfg Settings) error {
	if cfg.Addr == "" {
		return fmt.Errorf("config: addr is required")
	}
	if cfg.MaxPayloadSize == 0 {
		return fmt.Errorf("config: max_payload_size must be greater than zero")
	}
	return nil
}
