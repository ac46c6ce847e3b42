package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestPrepare_NoScaling(t *testing.T) {
	img := solidImage(100, 60, color.RGBA{0, 255, 0, 255})

	out, scale := Prepare(img, PrepareOptions{MaxDimension: 200})

	if scale != 1 {
		t.Errorf("scale: got %v, want 1", scale)
	}
	if out.Bounds() != image.Rect(0, 0, 100, 60) {
		t.Errorf("bounds: got %v", out.Bounds())
	}
	r, g, b, _ := out.At(50, 30).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("pixel changed: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestPrepare_Downscales(t *testing.T) {
	img := solidImage(400, 200, color.White)

	out, scale := Prepare(img, PrepareOptions{MaxDimension: 100})

	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 50 {
		t.Errorf("dimensions: got %dx%d, want 100x50", out.Bounds().Dx(), out.Bounds().Dy())
	}
	if scale != 0.25 {
		t.Errorf("scale: got %v, want 0.25", scale)
	}
}

func TestPrepare_BlurKeepsUniformColor(t *testing.T) {
	img := solidImage(40, 40, color.RGBA{0, 0, 255, 255})

	out, _ := Prepare(img, PrepareOptions{BlurRadius: 2})

	_, _, b, _ := out.At(20, 20).RGBA()
	if b>>8 < 250 {
		t.Errorf("center of uniform image should stay blue, got b=%d", b>>8)
	}
}

func TestPrepare_DoesNotModifyInput(t *testing.T) {
	img := solidImage(20, 20, color.Black)
	img.Set(10, 10, color.White)

	Prepare(img, PrepareOptions{BlurRadius: 3})

	if r, _, _, _ := img.At(10, 10).RGBA(); r>>8 != 255 {
		t.Error("Prepare modified its input")
	}
}

func TestScaleRect(t *testing.T) {
	r := image.Rect(10, 20, 30, 40)

	if got := ScaleRect(r, 1, image.Point{}); got != r {
		t.Errorf("unscaled: got %v, want %v", got, r)
	}
	if got := ScaleRect(r, 0.5, image.Point{}); got != image.Rect(20, 40, 60, 80) {
		t.Errorf("scaled: got %v", got)
	}
	if got := ScaleRect(r, 1, image.Pt(5, 5)); got != image.Rect(15, 25, 35, 45) {
		t.Errorf("offset: got %v", got)
	}
}
