package detection

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/ironsheep/tokenorder/internal/imaging"
	"github.com/ironsheep/tokenorder/internal/menu"
	"github.com/ironsheep/tokenorder/internal/order"
)

// Options configures a Detector.
type Options struct {
	// Bands lists the color bands. A category may have several bands; their
	// masks are merged.
	Bands []Band

	// Prepare controls downscaling and blurring before masking.
	Prepare imaging.PrepareOptions

	// MinArea is the smallest region, in pixels of the prepared image, that
	// counts as a token.
	MinArea int

	// EpsilonRatio sets the polygon approximation tolerance as a fraction of
	// the hull perimeter.
	EpsilonRatio float64
}

// DefaultOptions returns the settings used when no config is given.
func DefaultOptions() Options {
	return Options{
		Bands: DefaultBands(),
		Prepare: imaging.PrepareOptions{
			MaxDimension: 1024,
			BlurRadius:   1,
		},
		MinArea:      150,
		EpsilonRatio: 0.04,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if len(o.Bands) == 0 {
		return errors.New("at least one color band is required")
	}
	for _, b := range o.Bands {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	if o.MinArea < 1 {
		return fmt.Errorf("min area must be at least 1, got %d", o.MinArea)
	}
	if o.EpsilonRatio <= 0 || o.EpsilonRatio >= 1 {
		return fmt.Errorf("epsilon ratio must be in (0, 1), got %v", o.EpsilonRatio)
	}
	if o.Prepare.MaxDimension < 0 {
		return fmt.Errorf("max dimension must not be negative, got %d", o.Prepare.MaxDimension)
	}
	if o.Prepare.BlurRadius < 0 {
		return fmt.Errorf("blur radius must not be negative, got %v", o.Prepare.BlurRadius)
	}
	return nil
}

// Region is a detected token with the geometry behind its observation.
type Region struct {
	order.Observation

	// Area is the pixel count in the prepared image.
	Area int `json:"area"`

	// Polygon is the approximated outline in original image coordinates.
	Polygon []image.Point `json:"polygon"`
}

// Detector finds token regions in photos. It is safe for concurrent use.
type Detector struct {
	opts   Options
	bands  map[menu.Category][]Band
	logger *slog.Logger
}

// NewDetector validates opts and returns a detector. A nil logger discards
// diagnostics.
func NewDetector(opts Options, logger *slog.Logger) (*Detector, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detection options: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Detector{
		opts:   opts,
		bands:  bandsByCategory(opts.Bands),
		logger: logger,
	}, nil
}

// DetectRegions implements order.RegionDetector.
func (d *Detector) DetectRegions(ctx context.Context, img image.Image) ([]order.Observation, error) {
	regions, err := d.Detect(ctx, img)
	if err != nil {
		return nil, err
	}
	observations := make([]order.Observation, len(regions))
	for i, r := range regions {
		observations[i] = r.Observation
	}
	return observations, nil
}

// Detect returns every token region, grouped by category in
// menu.Categories order. Boxes and polygons are in the coordinates of img.
func (d *Detector) Detect(ctx context.Context, img image.Image) ([]Region, error) {
	if img.Bounds().Empty() {
		return nil, errors.New("image is empty")
	}

	prepared, scale := imaging.Prepare(img, d.opts.Prepare)
	origin := img.Bounds().Min
	regions := make([]Region, 0)

	for _, category := range menu.Categories() {
		bands := d.bands[category]
		if len(bands) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m := buildMask(prepared, bands)
		components := findComponents(m, d.opts.MinArea)

		for _, c := range components {
			hull := convexHull(c.extremes())
			poly := hull
			if len(hull) > 3 {
				poly = approxPolygon(hull, d.opts.EpsilonRatio*perimeter(hull))
			}

			box := imaging.ScaleRect(c.bounds, scale, origin)
			regions = append(regions, Region{
				Observation: order.NewObservation(category, len(poly), order.BoxFromRect(box)),
				Area:        c.area,
				Polygon:     scalePoints(poly, scale, origin),
			})
		}

		d.logger.Debug("category scanned",
			"category", category.String(),
			"regions", len(components))
	}

	return regions, nil
}

func scalePoints(pts []image.Point, scale float64, origin image.Point) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		if scale > 0 && scale != 1 {
			p = image.Pt(int(float64(p.X)/scale+0.5), int(float64(p.Y)/scale+0.5))
		}
		out[i] = p.Add(origin)
	}
	return out
}
