package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/tokenorder/internal/menu"
	"github.com/ironsheep/tokenorder/internal/order"
)

func TestAnnotate_DrawsBox(t *testing.T) {
	img := solidImage(100, 100, color.White)
	labels := []Label{{Rect: image.Rect(20, 30, 60, 70), Text: "Soup (15 TL)"}}

	out := Annotate(img, labels, DefaultAnnotateOptions())

	// Left edge of the box is green.
	r, g, b, _ := out.At(20, 50).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("box edge: got (%d,%d,%d), want green", r>>8, g>>8, b>>8)
	}

	// Inside of the box is untouched.
	r, g, b, _ = out.At(40, 50).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("box interior: got (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}

	// Input is not modified.
	if r, g, b, _ := img.At(20, 50).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Error("Annotate modified its input")
	}
}

func TestAnnotate_DrawsText(t *testing.T) {
	img := solidImage(200, 100, color.White)
	labels := []Label{{Rect: image.Rect(10, 40, 190, 90), Text: "Garlic Bread (22 TL)"}}

	out := Annotate(img, labels, AnnotateOptions{})

	red := 0
	for y := 20; y < 40; y++ {
		for x := 10; x < 190; x++ {
			r, g, b, _ := out.At(x, y).RGBA()
			if r>>8 == 255 && g>>8 == 0 && b>>8 == 0 {
				red++
			}
		}
	}
	if red == 0 {
		t.Error("expected red label pixels above the box")
	}
}

func TestAnnotate_ClipsAtEdges(t *testing.T) {
	img := solidImage(50, 50, color.White)
	labels := []Label{{Rect: image.Rect(-10, -10, 80, 80), Text: "Tiramisu (19 TL)"}}

	out := Annotate(img, labels, DefaultAnnotateOptions())

	if out.Bounds() != image.Rect(0, 0, 50, 50) {
		t.Errorf("bounds changed: %v", out.Bounds())
	}
}

func TestEncodePNGBase64(t *testing.T) {
	img := solidImage(10, 10, color.Black)

	encoded, err := EncodePNGBase64(img)
	if err != nil {
		t.Fatalf("EncodePNGBase64 failed: %v", err)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 10 {
		t.Errorf("width: got %d, want 10", decoded.Bounds().Dx())
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "annotated.png")
	if err := Save(solidImage(8, 8, color.White), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cache := NewImageCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width: got %d, want 8", img.Bounds().Dx())
	}

	if err := Save(solidImage(8, 8, color.White), filepath.Join(t.TempDir(), "out.unknown")); err == nil {
		t.Error("Save should fail for an unsupported extension")
	}
}

func TestOrderLabels(t *testing.T) {
	o, _ := order.NewAssembler(menu.DefaultCatalog()).Assemble([]order.Observation{
		order.NewObservation(menu.Starter, 4, order.Box{X1: 1, Y1: 2, X2: 30, Y2: 40}),
		order.NewObservation(menu.Dessert, 5, order.Box{X1: 50, Y1: 50, X2: 90, Y2: 95}),
	})

	labels := OrderLabels(o)

	if len(labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(labels))
	}
	if labels[0].Text != "Soup (15 TL)" || labels[0].Rect != image.Rect(1, 2, 30, 40) {
		t.Errorf("first label: got %+v", labels[0])
	}
	if labels[1].Text != "Tiramisu (19 TL)" {
		t.Errorf("second label: got %q", labels[1].Text)
	}
}
