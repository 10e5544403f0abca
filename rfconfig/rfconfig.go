// Package rfconfig loads the TOML-based runtime configuration used by
// the cmd/frameinspect demo binary. The core parser
// and serializer packages take no configuration file of their own;
// this package exists only for the binaries that wire them together.
package rfconfig

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the settings a demo binary needs to stand up a Parser
// and a metrics/log stack around it.
type Config struct {
	RingCapacity int    `toml:"ring_capacity"`
	MaxPayload   int    `toml:"max_payload"`
	MetricsAddr  string `toml:"metrics_addr"`
	LogLevel     string `toml:"log_level"`
}

// Default returns the configuration used when no file is supplied or a
// key is left unset.
func Default() Config {
	return Config{
		RingCapacity: 4096,
		MaxPayload:   256,
		MetricsAddr:  ":9464",
		LogLevel:     "info",
	}
}

// Load reads path and overlays any keys it defines onto Default().
// Missing keys keep their default value rather than zeroing out.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("rfconfig: load %q: %w", path, err)
	}

	if meta.IsDefined("ring_capacity") {
		cfg.RingCapacity = raw.RingCapacity
	}
	if meta.IsDefined("max_payload") {
		cfg.MaxPayload = raw.MaxPayload
	}
	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether cfg's settings are internally consistent.
func (c Config) Validate() error {
	if c.RingCapacity <= 0 || c.RingCapacity&(c.RingCapacity-1) != 0 {
		return fmt.Errorf("rfconfig: ring_capacity must be a positive power of two, got %d", c.RingCapacity)
	}
	if c.MaxPayload <= 0 {
		return fmt.Errorf("rfconfig: max_payload must be positive, got %d", c.MaxPayload)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("rfconfig: unsupported log_level %q", c.LogLevel)
	}
	return nil
}
