// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	minViewport = 1
	maxViewport = 40
)

// Config holds the settings for a stancewalk session.
type Config struct {
	// Telemetry toggles OTLP trace export. When false spans go to a no-op tracer.
	Telemetry bool `env:"STANCEWALK_TELEMETRY" envDefault:"true"`

	// OTLPEndpoint is where traces are exported.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"https://api.honeycomb.io"`

	HoneycombAPIKey  string `env:"HONEYCOMB_STANCEWALK_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_STANCEWALK_DATASET" envDefault:"stancewalk"`

	// Viewport is the radius, in cells, of the map drawn around the character.
	Viewport int `env:"STANCEWALK_VIEWPORT" envDefault:"7"`
}

// Load parses the process environment into a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values env parsing cannot.
func (c Config) Validate() error {
	if c.Viewport < minViewport || c.Viewport > maxViewport {
		return fmt.Errorf("viewport %d out of range [%d, %d]", c.Viewport, minViewport, maxViewport)
	}
	if c.Telemetry && c.OTLPEndpoint == "" {
		return errors.New("telemetry enabled without an OTLP endpoint")
	}
	return nil
}

// OTLPHeaders returns the Honeycomb export headers, or nil when no API key is
// configured.
func (c Config) OTLPHeaders() map[string]string {
	if c.HoneycombAPIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    c.HoneycombAPIKey,
		"x-honeycomb-dataset": c.HoneycombDataset,
	}
}
