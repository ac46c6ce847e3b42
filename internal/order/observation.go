package order

import (
	"context"
	"image"

	"github.com/ironsheep/tokenorder/internal/menu"
)

// Box is a bounding box in pixel coordinates. (X1, Y1) is the top-left
// corner (inclusive) and (X2, Y2) the bottom-right corner (exclusive).
type Box struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// BoxFromRect converts an image.Rectangle.
func BoxFromRect(r image.Rectangle) Box {
	return Box{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

// Rect converts the box back to an image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// Observation is one colored region found in a photo.
type Observation struct {
	Category menu.Category `json:"category"`

	// Shape is zero when Vertices did not classify as a known shape.
	Shape menu.Shape `json:"shape"`

	// Vertices is the vertex count of the approximated outline.
	Vertices int `json:"vertices"`

	Box Box `json:"box"`
}

// NewObservation classifies vertices and builds the observation.
func NewObservation(category menu.Category, vertices int, box Box) Observation {
	shape, _ := menu.Classify(vertices)
	return Observation{Category: category, Shape: shape, Vertices: vertices, Box: box}
}

// Recognized reports whether the observation carries a known shape.
func (o Observation) Recognized() bool {
	return o.Shape.Valid()
}

// RegionDetector produces observations from an image. Observations are
// returned in discovery order.
type RegionDetector interface {
	DetectRegions(ctx context.Context, img image.Image) ([]Observation, error)
}
