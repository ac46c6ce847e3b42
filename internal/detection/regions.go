package detection

import (
	"image"

	"github.com/ironsheep/tokenorder/internal/imaging"
)

// mask is a binary image: true where a pixel belongs to the category.
type mask struct {
	width, height int
	bits          []bool
}

// buildMask marks every pixel of img that falls inside any of bands.
// img must start at (0, 0).
func buildMask(img image.Image, bands []Band) *mask {
	bounds := img.Bounds()
	m := &mask{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		bits:   make([]bool, bounds.Dx()*bounds.Dy()),
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			hsv, ok := imaging.ToHSV(img.At(x, y))
			if !ok {
				continue
			}
			for _, b := range bands {
				if b.Contains(hsv) {
					m.bits[y*m.width+x] = true
					break
				}
			}
		}
	}
	return m
}

// component is one 8-connected group of mask pixels.
type component struct {
	area   int
	bounds image.Rectangle

	// rowMin and rowMax hold the leftmost and rightmost x of every row
	// the component touches, indexed from bounds.Min.Y.
	rowMin, rowMax []int
}

// extremes returns the leftmost and rightmost pixel of every row. Their
// convex hull equals the hull of the whole component.
func (c *component) extremes() []image.Point {
	pts := make([]image.Point, 0, 2*len(c.rowMin))
	for i := range c.rowMin {
		y := c.bounds.Min.Y + i
		pts = append(pts, image.Pt(c.rowMin[i], y))
		if c.rowMax[i] != c.rowMin[i] {
			pts = append(pts, image.Pt(c.rowMax[i], y))
		}
	}
	return pts
}

// findComponents labels the connected regions of m in row-major discovery
// order. Regions with fewer than minArea pixels are dropped.
func findComponents(m *mask, minArea int) []*component {
	visited := make([]bool, len(m.bits))
	components := make([]*component, 0)

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			if !m.bits[i] || visited[i] {
				continue
			}
			pixels := floodFill(m, visited, x, y)
			if len(pixels) < minArea {
				continue
			}
			components = append(components, newComponent(pixels))
		}
	}
	return components
}

func newComponent(pixels []image.Point) *component {
	minX, minY := pixels[0].X, pixels[0].Y
	maxX, maxY := minX, minY
	for _, p := range pixels {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rows := maxY - minY + 1
	c := &component{
		area:   len(pixels),
		bounds: image.Rect(minX, minY, maxX+1, maxY+1),
		rowMin: make([]int, rows),
		rowMax: make([]int, rows),
	}
	for i := range c.rowMin {
		c.rowMin[i] = maxX + 1
		c.rowMax[i] = minX - 1
	}
	for _, p := range pixels {
		r := p.Y - minY
		if p.X < c.rowMin[r] {
			c.rowMin[r] = p.X
		}
		if p.X > c.rowMax[r] {
			c.rowMax[r] = p.X
		}
	}
	return c
}

// floodFill collects the 8-connected region containing (startX, startY).
//
// It uses an explicit stack rather than recursion so large tokens cannot
// overflow the goroutine stack.
func floodFill(m *mask, visited []bool, startX, startY int) []image.Point {
	var region []image.Point
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= m.width || p.Y < 0 || p.Y >= m.height {
			continue
		}
		i := p.Y*m.width + p.X
		if visited[i] || !m.bits[i] {
			continue
		}

		visited[i] = true
		region = append(region, p)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return region
}
