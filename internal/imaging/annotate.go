package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/tokenorder/internal/order"
)

// Label is one annotation: a box around a token and the text drawn above it.
type Label struct {
	Rect image.Rectangle
	Text string
}

// AnnotateOptions controls annotation colors and stroke.
type AnnotateOptions struct {
	BoxColor  color.Color
	TextColor color.Color

	// Thickness is the box stroke width in pixels.
	Thickness int
}

// DefaultAnnotateOptions draws green boxes with red text, 2 px wide.
func DefaultAnnotateOptions() AnnotateOptions {
	return AnnotateOptions{
		BoxColor:  color.RGBA{0, 255, 0, 255},
		TextColor: color.RGBA{255, 0, 0, 255},
		Thickness: 2,
	}
}

// Annotate returns a copy of img with every label drawn on it. The input
// image is not modified.
//
// Text is set in a 7x13 bitmap face with its baseline just above the box.
// Labels near the top edge are pushed down so the text stays visible.
func Annotate(img image.Image, labels []Label, opts AnnotateOptions) *image.NRGBA {
	if opts.BoxColor == nil || opts.TextColor == nil || opts.Thickness <= 0 {
		defaults := DefaultAnnotateOptions()
		if opts.BoxColor == nil {
			opts.BoxColor = defaults.BoxColor
		}
		if opts.TextColor == nil {
			opts.TextColor = defaults.TextColor
		}
		if opts.Thickness <= 0 {
			opts.Thickness = defaults.Thickness
		}
	}

	out := imaging.Clone(img)
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()

	for _, l := range labels {
		r := l.Rect.Sub(img.Bounds().Min)
		drawBox(out, r, opts.BoxColor, opts.Thickness)

		baseline := r.Min.Y - 2
		if baseline < ascent {
			baseline = ascent
		}
		d := &font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(opts.TextColor),
			Face: face,
			Dot:  fixed.P(r.Min.X, baseline),
		}
		d.DrawString(l.Text)
	}
	return out
}

// drawBox strokes the inside edge of r, clipped to the image.
func drawBox(img draw.Image, r image.Rectangle, c color.Color, thickness int) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness),
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y),
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		e = e.Intersect(img.Bounds())
		if e.Empty() {
			continue
		}
		draw.Draw(img, e, src, image.Point{}, draw.Src)
	}
}

// Save writes img to path; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// EncodePNGBase64 encodes img as a base64 PNG.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// OrderLabels labels every selection of o with its dish and price.
func OrderLabels(o *order.Order) []Label {
	selections := o.Selections()
	labels := make([]Label, len(selections))
	for i, s := range selections {
		labels[i] = Label{Rect: s.Box.Rect(), Text: s.Label()}
	}
	return labels
}
