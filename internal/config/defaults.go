package config

import (
	"github.com/ironsheep/tokenorder/internal/detection"
	"github.com/ironsheep/tokenorder/internal/imaging"
	"github.com/ironsheep/tokenorder/internal/menu"
)

// Default values for configuration fields.
const (
	DefaultMaxDimension = 1024
	DefaultBlurRadius   = 1.0
	DefaultMinArea      = 150
	DefaultEpsilonRatio = 0.04

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultMetricsNamespace = "tokenorder"
)

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills unset fields. Zero numbers count as unset.
func ApplyDefaults(cfg *Config) {
	if cfg.Detection.MaxDimension == 0 {
		cfg.Detection.MaxDimension = DefaultMaxDimension
	}
	if cfg.Detection.BlurRadius == 0 {
		cfg.Detection.BlurRadius = DefaultBlurRadius
	}
	if cfg.Detection.MinArea == 0 {
		cfg.Detection.MinArea = DefaultMinArea
	}
	if cfg.Detection.EpsilonRatio == 0 {
		cfg.Detection.EpsilonRatio = DefaultEpsilonRatio
	}

	if cfg.Bands == nil {
		cfg.Bands = defaultBands()
	}
	if cfg.Menu == nil {
		cfg.Menu = defaultMenu()
	}

	annotate := imaging.DefaultAnnotateOptions()
	if cfg.Annotate.BoxColor == "" {
		cfg.Annotate.BoxColor = imaging.Hex(annotate.BoxColor)
	}
	if cfg.Annotate.TextColor == "" {
		cfg.Annotate.TextColor = imaging.Hex(annotate.TextColor)
	}
	if cfg.Annotate.Thickness == 0 {
		cfg.Annotate.Thickness = annotate.Thickness
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}

	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}

func defaultBands() []BandConfig {
	var bands []BandConfig
	for _, b := range detection.DefaultBands() {
		bands = append(bands, BandConfig{
			Category:   b.Category.String(),
			Hue:        []float64{b.Hue.Lo, b.Hue.Hi},
			Saturation: []float64{b.Saturation.Lo, b.Saturation.Hi},
			Value:      []float64{b.Value.Lo, b.Value.Hi},
		})
	}
	return bands
}

func defaultMenu() map[string]map[string]DishConfig {
	out := make(map[string]map[string]DishConfig)
	for key, entry := range menu.DefaultEntries() {
		cat := key.Category.String()
		if out[cat] == nil {
			out[cat] = make(map[string]DishConfig)
		}
		out[cat][key.Shape.String()] = DishConfig{Name: entry.Name, Price: entry.Price}
	}
	return out
}
