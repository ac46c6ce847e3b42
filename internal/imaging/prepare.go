package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// PrepareOptions controls how a photo is conditioned before detection.
type PrepareOptions struct {
	// MaxDimension caps the longer side in pixels. Larger photos are scaled
	// down preserving aspect ratio; 0 disables scaling.
	MaxDimension int

	// BlurRadius is the Gaussian blur radius in pixels; 0 disables blurring.
	BlurRadius float64
}

// Prepare returns a conditioned copy of img and the factor by which it was
// scaled (1 when unchanged). Coordinates found in the prepared image map
// back to the original by dividing by the factor.
//
// The returned image always starts at (0, 0).
func Prepare(img image.Image, opts PrepareOptions) (image.Image, float64) {
	bounds := img.Bounds()
	scale := 1.0

	var out image.Image
	if opts.MaxDimension > 0 && (bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension) {
		fitted := imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
		scale = float64(fitted.Bounds().Dx()) / float64(bounds.Dx())
		out = fitted
	} else {
		out = imaging.Clone(img)
	}

	if opts.BlurRadius > 0 {
		out = blur.Gaussian(out, opts.BlurRadius)
	}
	return out, scale
}

// ScaleRect maps a rectangle found in a prepared image back to the
// coordinates of the original image.
func ScaleRect(r image.Rectangle, scale float64, origin image.Point) image.Rectangle {
	if scale <= 0 || scale == 1 {
		return r.Add(origin)
	}
	return image.Rect(
		int(float64(r.Min.X)/scale),
		int(float64(r.Min.Y)/scale),
		int(float64(r.Max.X)/scale+0.5),
		int(float64(r.Max.Y)/scale+0.5),
	).Add(origin)
}
