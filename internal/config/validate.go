package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ironsheep/tokenorder/internal/imaging"
	"github.com/ironsheep/tokenorder/internal/menu"
)

// FieldError is a validation problem with one field.
type FieldError struct {
	// Field is the dotted path to the field, e.g. "detection.min_area".
	Field string

	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every problem found in a config.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration validation failed with %d errors:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}

// Validate returns a ValidationError listing every invalid field, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateDetection(&cfg.Detection)...)
	errs = append(errs, validateBands(cfg.Bands)...)
	errs = append(errs, validateMenu(cfg.Menu)...)
	errs = append(errs, validateAnnotate(&cfg.Annotate)...)
	errs = append(errs, validateLog(&cfg.Log)...)
	errs = append(errs, validateMetrics(&cfg.Metrics)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateDetection(d *DetectionConfig) []FieldError {
	var errs []FieldError
	if d.MaxDimension < 0 {
		errs = append(errs, FieldError{"detection.max_dimension", "must not be negative"})
	}
	if d.BlurRadius < 0 {
		errs = append(errs, FieldError{"detection.blur_radius", "must not be negative"})
	}
	if d.MinArea < 1 {
		errs = append(errs, FieldError{"detection.min_area", "must be at least 1"})
	}
	if d.EpsilonRatio <= 0 || d.EpsilonRatio >= 1 {
		errs = append(errs, FieldError{"detection.epsilon_ratio", "must be between 0 and 1"})
	}
	return errs
}

func validateBands(bands []BandConfig) []FieldError {
	var errs []FieldError
	if len(bands) == 0 {
		errs = append(errs, FieldError{"bands", "at least one band is required"})
	}
	for i, b := range bands {
		if _, err := b.band(); err != nil {
			errs = append(errs, FieldError{fmt.Sprintf("bands[%d]", i), err.Error()})
		}
	}
	return errs
}

func validateMenu(m map[string]map[string]DishConfig) []FieldError {
	var errs []FieldError
	seen := make(map[menu.Key]string)

	for _, catName := range sortedKeys(m) {
		category, err := menu.ParseCategory(catName)
		if err != nil {
			errs = append(errs, FieldError{"menu." + catName, err.Error()})
			continue
		}
		for _, shapeName := range sortedKeys(m[catName]) {
			field := "menu." + catName + "." + shapeName
			shape, err := menu.ParseShape(shapeName)
			if err != nil {
				errs = append(errs, FieldError{field, err.Error()})
				continue
			}
			key := menu.Key{Category: category, Shape: shape}
			if prev, dup := seen[key]; dup {
				errs = append(errs, FieldError{field, "duplicates " + prev})
				continue
			}
			seen[key] = field

			dish := m[catName][shapeName]
			if strings.TrimSpace(dish.Name) == "" {
				errs = append(errs, FieldError{field + ".name", "is required"})
			}
			if dish.Price < 0 {
				errs = append(errs, FieldError{field + ".price", "must not be negative"})
			}
		}
	}
	return errs
}

func validateAnnotate(a *AnnotateConfig) []FieldError {
	var errs []FieldError
	if _, err := imaging.ParseHexColor(a.BoxColor); err != nil {
		errs = append(errs, FieldError{"annotate.box_color", err.Error()})
	}
	if _, err := imaging.ParseHexColor(a.TextColor); err != nil {
		errs = append(errs, FieldError{"annotate.text_color", err.Error()})
	}
	if a.Thickness < 1 {
		errs = append(errs, FieldError{"annotate.thickness", "must be at least 1"})
	}
	return errs
}

func validateLog(l *LogConfig) []FieldError {
	var errs []FieldError
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{"log.level", fmt.Sprintf("unknown level %q", l.Level)})
	}
	switch l.Format {
	case "text", "json":
	default:
		errs = append(errs, FieldError{"log.format", fmt.Sprintf("unknown format %q", l.Format)})
	}
	return errs
}

func validateMetrics(m *MetricsConfig) []FieldError {
	var errs []FieldError
	if m.Enabled && m.Namespace == "" {
		errs = append(errs, FieldError{"metrics.namespace", "is required when metrics are enabled"})
	}
	if m.Listen != "" && !strings.Contains(m.Listen, ":") {
		errs = append(errs, FieldError{"metrics.listen", "must be host:port"})
	}
	return errs
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
