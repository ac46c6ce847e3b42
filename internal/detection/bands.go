package detection

import (
	"fmt"

	"github.com/ironsheep/tokenorder/internal/imaging"
	"github.com/ironsheep/tokenorder/internal/menu"
)

// Range is a closed interval [Lo, Hi].
type Range struct {
	Lo float64 `json:"lo" yaml:"lo"`
	Hi float64 `json:"hi" yaml:"hi"`
}

func (r Range) contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

func (r Range) unit() bool {
	return r.Lo >= 0 && r.Hi <= 1 && r.Lo <= r.Hi
}

// Band is a color range that selects one category.
type Band struct {
	Category   menu.Category `json:"category"`
	Hue        Range         `json:"hue"`
	Saturation Range         `json:"saturation"`
	Value      Range         `json:"value"`
}

// Contains reports whether c falls inside the band.
func (b Band) Contains(c imaging.HSV) bool {
	if !b.Saturation.contains(c.S) || !b.Value.contains(c.V) {
		return false
	}
	if b.Hue.Lo <= b.Hue.Hi {
		return b.Hue.contains(c.H)
	}
	// Wrapping hue range, e.g. 350..10.
	return c.H >= b.Hue.Lo || c.H <= b.Hue.Hi
}

// Validate checks the band's category and ranges.
func (b Band) Validate() error {
	if !b.Category.Valid() {
		return fmt.Errorf("band has invalid category %v", b.Category)
	}
	if b.Hue.Lo < 0 || b.Hue.Lo > 360 || b.Hue.Hi < 0 || b.Hue.Hi > 360 {
		return fmt.Errorf("%s band: hue must be within 0..360", b.Category)
	}
	if !b.Saturation.unit() {
		return fmt.Errorf("%s band: saturation must satisfy 0 <= lo <= hi <= 1", b.Category)
	}
	if !b.Value.unit() {
		return fmt.Errorf("%s band: value must satisfy 0 <= lo <= hi <= 1", b.Category)
	}
	return nil
}

// Minimum saturation and value of a token color: 100 on a 0..255 scale.
const minChroma = 100.0 / 255.0

// DefaultBands returns one band per category. Hue limits are in degrees.
func DefaultBands() []Band {
	chroma := Range{Lo: minChroma, Hi: 1}
	return []Band{
		{Category: menu.Starter, Hue: Range{100, 140}, Saturation: chroma, Value: chroma},
		{Category: menu.Snack, Hue: Range{40, 60}, Saturation: chroma, Value: chroma},
		{Category: menu.MainCourse, Hue: Range{0, 40}, Saturation: chroma, Value: chroma},
		{Category: menu.Dessert, Hue: Range{150, 260}, Saturation: chroma, Value: chroma},
	}
}

// bandsByCategory groups bands per category, keyed in menu.Categories order.
func bandsByCategory(bands []Band) map[menu.Category][]Band {
	grouped := make(map[menu.Category][]Band)
	for _, b := range bands {
		grouped[b.Category] = append(grouped[b.Category], b)
	}
	return grouped
}
