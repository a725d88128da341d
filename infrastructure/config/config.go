// Package config provides configuration loading for the pdfscope server.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Transport names accepted by Config.Transport.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// ErrInvalidConfig indicates a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the server configuration.
type Config struct {
	// DataDir is the directory scanned once at startup for PDF files.
	DataDir string `yaml:"data_dir"`

	// Transport selects how the server is exposed (stdio or http).
	Transport string `yaml:"transport"`

	// Addr is the listen address for the http transport.
	Addr string `yaml:"addr"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is the output format (json or console).
	Format string `yaml:"format"`
}

// Default returns the configuration used when nothing else is specified:
// serve the current directory over stdio.
func Default() Config {
	return Config{
		DataDir:   ".",
		Transport: TransportStdio,
		Addr:      ":8765",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFile reads a YAML configuration file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays PDFSCOPE_* environment variables onto cfg.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("PDFSCOPE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PDFSCOPE_TRANSPORT"); v != "" {
		cfg.Transport = v
	}
	if v := os.Getenv("PDFSCOPE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PDFSCOPE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PDFSCOPE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return cfg
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	switch c.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.Addr == "" {
			return fmt.Errorf("%w: addr required for http transport", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalidConfig, c.Transport)
	}
	return nil
}
