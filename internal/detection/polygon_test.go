package detection

import (
	"image"
	"testing"
)

func TestConvexHull_DropsInteriorAndCollinear(t *testing.T) {
	pts := []image.Point{
		{0, 0}, {5, 0}, {10, 0},
		{0, 5}, {5, 5}, {10, 5},
		{0, 10}, {5, 10}, {10, 10},
	}

	hull := convexHull(pts)

	if len(hull) != 4 {
		t.Fatalf("got %d hull points %v, want 4", len(hull), hull)
	}
	if hull[0] != (image.Point{0, 0}) {
		t.Errorf("first hull point: got %v, want (0,0)", hull[0])
	}
}

func TestConvexHull_Degenerate(t *testing.T) {
	if got := convexHull([]image.Point{{1, 1}}); len(got) != 1 {
		t.Errorf("single point: got %v", got)
	}
	if got := convexHull([]image.Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}); len(got) != 2 {
		t.Errorf("collinear points: got %v, want 2 endpoints", got)
	}
}

func TestApproxPolygon_CollapsesStaircase(t *testing.T) {
	// A square whose right edge wobbles by one pixel.
	poly := []image.Point{
		{0, 0}, {50, 0}, {51, 10}, {50, 20}, {51, 30}, {50, 50}, {0, 50},
	}
	eps := 0.04 * perimeter(poly)

	got := approxPolygon(poly, eps)

	if len(got) != 4 {
		t.Errorf("got %d vertices %v, want 4", len(got), got)
	}
}

func TestApproxPolygon_KeepsPentagon(t *testing.T) {
	poly := []image.Point{{0, 20}, {20, 0}, {40, 20}, {40, 59}, {0, 59}}

	got := approxPolygon(poly, 0.04*perimeter(poly))

	if len(got) != 5 {
		t.Errorf("got %d vertices %v, want 5", len(got), got)
	}
}

func TestApproxPolygon_SmallInput(t *testing.T) {
	tri := []image.Point{{0, 0}, {10, 0}, {0, 10}}
	if got := approxPolygon(tri, 100); len(got) != 3 {
		t.Errorf("triangle should pass through unchanged, got %v", got)
	}
}

func TestSegmentDistance(t *testing.T) {
	a, b := image.Pt(0, 0), image.Pt(10, 0)

	if d := segmentDistance(image.Pt(5, 3), a, b); d != 3 {
		t.Errorf("perpendicular distance: got %v, want 3", d)
	}
	if d := segmentDistance(image.Pt(13, 4), a, b); d != 5 {
		t.Errorf("distance past the end: got %v, want 5", d)
	}
	if d := segmentDistance(image.Pt(3, 4), a, a); d != 5 {
		t.Errorf("degenerate segment: got %v, want 5", d)
	}
}

func TestFindComponents(t *testing.T) {
	m := &mask{width: 10, height: 10, bits: make([]bool, 100)}
	set := func(x, y int) { m.bits[y*10+x] = true }

	// Two diagonal-touching pixels form one 8-connected component.
	set(1, 1)
	set(2, 2)
	// A separate 2x2 block.
	set(6, 6)
	set(7, 6)
	set(6, 7)
	set(7, 7)

	comps := findComponents(m, 1)
	if len(comps) != 2 {
		t.Fatalf("got %d components, want 2", len(comps))
	}
	if comps[0].area != 2 || comps[1].area != 4 {
		t.Errorf("areas: got %d and %d, want 2 and 4", comps[0].area, comps[1].area)
	}
	if comps[1].bounds != image.Rect(6, 6, 8, 8) {
		t.Errorf("bounds: got %v", comps[1].bounds)
	}

	if got := findComponents(m, 3); len(got) != 1 {
		t.Errorf("minArea 3: got %d components, want 1", len(got))
	}
}
