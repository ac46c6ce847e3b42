package config

import (
	"fmt"

	"github.com/ironsheep/tokenorder/internal/detection"
	"github.com/ironsheep/tokenorder/internal/imaging"
	"github.com/ironsheep/tokenorder/internal/menu"
)

// Config is the root of the configuration file.
type Config struct {
	Detection DetectionConfig `yaml:"detection"`

	// Bands replaces the default color bands when set.
	Bands []BandConfig `yaml:"bands"`

	// Menu maps category to shape to dish. Keys accept anything
	// menu.ParseCategory and menu.ParseShape accept.
	Menu map[string]map[string]DishConfig `yaml:"menu"`

	Annotate AnnotateConfig `yaml:"annotate"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DetectionConfig tunes the token detector.
type DetectionConfig struct {
	// MaxDimension caps the longer image side before detection.
	MaxDimension int `yaml:"max_dimension"`

	// BlurRadius is the Gaussian blur radius applied before masking.
	BlurRadius float64 `yaml:"blur_radius"`

	// MinArea is the smallest token, in pixels, after downscaling.
	MinArea int `yaml:"min_area"`

	// EpsilonRatio is the polygon tolerance as a fraction of the perimeter.
	EpsilonRatio float64 `yaml:"epsilon_ratio"`
}

// BandConfig is one HSV color band. Hue is in degrees; saturation and value
// are fractions. Each range is written as [lo, hi].
type BandConfig struct {
	Category   string    `yaml:"category"`
	Hue        []float64 `yaml:"hue"`
	Saturation []float64 `yaml:"saturation"`
	Value      []float64 `yaml:"value"`
}

// DishConfig is one menu entry.
type DishConfig struct {
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
}

// AnnotateConfig styles annotated photos. Colors are "#RRGGBB" or
// "#RRGGBBAA".
type AnnotateConfig struct {
	BoxColor  string `yaml:"box_color"`
	TextColor string `yaml:"text_color"`
	Thickness int    `yaml:"thickness"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`

	// Listen is the address of the /metrics endpoint, e.g. "127.0.0.1:9464".
	// Empty disables the endpoint even when metrics are collected.
	Listen string `yaml:"listen"`
}

// Catalog builds the menu catalog described by the config.
func (c *Config) Catalog() (*menu.Catalog, error) {
	entries := make(map[menu.Key]menu.Entry)
	for catName, dishes := range c.Menu {
		category, err := menu.ParseCategory(catName)
		if err != nil {
			return nil, err
		}
		for shapeName, dish := range dishes {
			shape, err := menu.ParseShape(shapeName)
			if err != nil {
				return nil, err
			}
			key := menu.Key{Category: category, Shape: shape}
			if _, dup := entries[key]; dup {
				return nil, fmt.Errorf("menu defines %s %s twice", category, shape)
			}
			entries[key] = menu.Entry{Name: dish.Name, Price: dish.Price}
		}
	}
	return menu.NewCatalog(entries)
}

// DetectorOptions converts the detection and band sections.
func (c *Config) DetectorOptions() (detection.Options, error) {
	bands := make([]detection.Band, 0, len(c.Bands))
	for i, b := range c.Bands {
		band, err := b.band()
		if err != nil {
			return detection.Options{}, fmt.Errorf("bands[%d]: %w", i, err)
		}
		bands = append(bands, band)
	}

	opts := detection.Options{
		Bands: bands,
		Prepare: imaging.PrepareOptions{
			MaxDimension: c.Detection.MaxDimension,
			BlurRadius:   c.Detection.BlurRadius,
		},
		MinArea:      c.Detection.MinArea,
		EpsilonRatio: c.Detection.EpsilonRatio,
	}
	return opts, opts.Validate()
}

// AnnotateOptions converts the annotate section.
func (c *Config) AnnotateOptions() (imaging.AnnotateOptions, error) {
	box, err := imaging.ParseHexColor(c.Annotate.BoxColor)
	if err != nil {
		return imaging.AnnotateOptions{}, fmt.Errorf("annotate.box_color: %w", err)
	}
	text, err := imaging.ParseHexColor(c.Annotate.TextColor)
	if err != nil {
		return imaging.AnnotateOptions{}, fmt.Errorf("annotate.text_color: %w", err)
	}
	return imaging.AnnotateOptions{BoxColor: box, TextColor: text, Thickness: c.Annotate.Thickness}, nil
}

func (b BandConfig) band() (detection.Band, error) {
	category, err := menu.ParseCategory(b.Category)
	if err != nil {
		return detection.Band{}, err
	}
	hue, err := toRange("hue", b.Hue)
	if err != nil {
		return detection.Band{}, err
	}
	sat, err := toRange("saturation", b.Saturation)
	if err != nil {
		return detection.Band{}, err
	}
	val, err := toRange("value", b.Value)
	if err != nil {
		return detection.Band{}, err
	}

	band := detection.Band{Category: category, Hue: hue, Saturation: sat, Value: val}
	return band, band.Validate()
}

func toRange(name string, v []float64) (detection.Range, error) {
	if len(v) != 2 {
		return detection.Range{}, fmt.Errorf("%s must be [lo, hi], got %d values", name, len(v))
	}
	return detection.Range{Lo: v[0], Hi: v[1]}, nil
}
