package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies defaults and TOKENORDER_*
// environment overrides, and validates the result. An empty path loads
// the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(cfg)
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode rejects unknown keys so that typos do not silently fall back to
// defaults. An empty document is allowed.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides. Variables use
// the form TOKENORDER_SECTION_FIELD. Unparseable numbers are ignored.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("TOKENORDER_LOG_LEVEL"); val != "" {
		cfg.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("TOKENORDER_LOG_FORMAT"); val != "" {
		cfg.Log.Format = strings.ToLower(val)
	}

	if val := os.Getenv("TOKENORDER_DETECTION_MAX_DIMENSION"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Detection.MaxDimension = i
		}
	}
	if val := os.Getenv("TOKENORDER_DETECTION_BLUR_RADIUS"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Detection.BlurRadius = f
		}
	}
	if val := os.Getenv("TOKENORDER_DETECTION_MIN_AREA"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Detection.MinArea = i
		}
	}

	if val := os.Getenv("TOKENORDER_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
	if val := os.Getenv("TOKENORDER_METRICS_LISTEN"); val != "" {
		cfg.Metrics.Listen = val
	}
}
