package cli

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	green  = color.RGBA{0, 200, 0, 255}
	yellow = color.RGBA{255, 220, 0, 255}
	orange = color.RGBA{255, 128, 0, 255}
)

// writeOrderPhoto writes a white PNG with one filled square per color, laid
// out left to right.
func writeOrderPhoto(t *testing.T, colors ...color.Color) string {
	t.Helper()
	const side, gap = 60, 30

	width := gap + len(colors)*(side+gap)
	img := image.NewRGBA(image.Rect(0, 0, width, side+2*gap))
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for i, c := range colors {
		x0 := gap + i*(side+gap)
		for y := gap; y < gap+side; y++ {
			for x := x0; x < x0+side; x++ {
				img.Set(x, y, c)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "order.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestOrderCommand_Confirmed(t *testing.T) {
	path := writeOrderPhoto(t, green, orange)

	code, stdout, _ := run(t, "yes\n", "order", path)

	assert.Equal(t, 0, code)
	assert.Equal(t,
		"Your order is: Soup (15 TL), Meatballs (30 TL). \n"+
			"Do you confirm your order? (yes/no): "+
			"Your food is being prepared. The total amount you have to pay: 45 TL.\n",
		stdout)
}

func TestOrderCommand_Canceled(t *testing.T) {
	path := writeOrderPhoto(t, green, orange, yellow)

	code, stdout, _ := run(t, "no\n", "order", path)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Your order is: Soup (15 TL), Crispy Chicken (20 TL), Meatballs (30 TL). \n")
	assert.Contains(t, stdout, "Your order has been canceled.\n")
}

func TestOrderCommand_EOFCancels(t *testing.T) {
	path := writeOrderPhoto(t, green, orange)

	code, stdout, _ := run(t, "", "order", path)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Your order has been canceled.\n")
}

func TestOrderCommand_Rejected(t *testing.T) {
	path := writeOrderPhoto(t, yellow)

	code, stdout, _ := run(t, "yes\n", "order", path)

	assert.Equal(t, 0, code)
	assert.Equal(t,
		"Your order is: Crispy Chicken (20 TL). \n"+
			"Caution: To continue, you must select one main course and one starter.\n",
		stdout)
}

func TestOrderCommand_NoOrder(t *testing.T) {
	path := writeOrderPhoto(t)

	code, stdout, _ := run(t, "", "order", path)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Error: No valid orders detected.\n", stdout)
}

func TestOrderCommand_ImageLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	code, stdout, stderr := run(t, "", "order", path)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: Unable to load image from '"+path+"'.\n", stdout)
	assert.NotContains(t, stderr, "Error:")
}

func TestOrderCommand_Annotate(t *testing.T) {
	path := writeOrderPhoto(t, green, orange)
	out := filepath.Join(t.TempDir(), "annotated.png")

	code, _, _ := run(t, "yes\n", "order", path, "--annotate", out)
	require.Equal(t, 0, code)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// The starter square gets a green box on its left edge.
	r, g, b, _ := img.At(30, 60).RGBA()
	assert.Equal(t, [3]uint32{0, 255, 0}, [3]uint32{r >> 8, g >> 8, b >> 8})
}

func TestOrderCommand_ConfigMenu(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "tokenorder.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
menu:
  green:
    rectangle: {name: Lentil Soup, price: 18}
  orange:
    rectangle: {name: Kofte, price: 33}
`), 0o600))
	path := writeOrderPhoto(t, green, orange)

	code, stdout, _ := run(t, "yes\n", "order", path, "--config", cfgPath)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Your order is: Lentil Soup (18 TL), Kofte (33 TL). \n")
	assert.Contains(t, stdout, "The total amount you have to pay: 51 TL.\n")
}

func TestOrderCommand_DebugLogsToStderr(t *testing.T) {
	path := writeOrderPhoto(t, green, orange)

	_, stdout, stderr := run(t, "yes\n", "order", path, "--log-level", "debug")

	assert.Contains(t, stderr, "order flow finished")
	assert.NotContains(t, stdout, "order flow finished")
}
