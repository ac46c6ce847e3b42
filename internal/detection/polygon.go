package detection

import (
	"image"
	"math"
	"sort"
)

// convexHull returns the hull of pts in traversal order using Andrew's
// monotone chain. Collinear points are dropped, so a hull never has a
// vertex in the middle of a straight edge. The first vertex is the point
// with the smallest (x, y).
func convexHull(pts []image.Point) []image.Point {
	if len(pts) < 3 {
		out := make([]image.Point, len(pts))
		copy(out, pts)
		return out
	}

	sorted := make([]image.Point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	hull := make([]image.Point, 0, 2*len(sorted))

	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point repeats the first.
	return hull[:len(hull)-1]
}

// cross is the z component of (a-o) × (b-o).
func cross(o, a, b image.Point) int {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// perimeter of a closed polygon.
func perimeter(poly []image.Point) float64 {
	total := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		total += dist(poly[i], poly[j])
	}
	return total
}

func dist(a, b image.Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// approxPolygon simplifies a closed polygon with Douglas-Peucker. Vertices
// closer than epsilon to the simplified outline are removed.
//
// The ring is cut at poly[0] and at the vertex farthest from it, each half
// is simplified as an open chain, and the halves are joined again.
func approxPolygon(poly []image.Point, epsilon float64) []image.Point {
	n := len(poly)
	if n <= 3 {
		out := make([]image.Point, n)
		copy(out, poly)
		return out
	}

	far := 0
	best := -1.0
	for i := 1; i < n; i++ {
		if d := dist(poly[0], poly[i]); d > best {
			best, far = d, i
		}
	}

	first := simplifyChain(poly[:far+1], epsilon)

	second := make([]image.Point, 0, n-far+1)
	second = append(second, poly[far:]...)
	second = append(second, poly[0])
	second = simplifyChain(second, epsilon)

	// Both halves end where the other begins; drop the duplicated joints.
	out := make([]image.Point, 0, len(first)+len(second)-2)
	out = append(out, first[:len(first)-1]...)
	out = append(out, second[:len(second)-1]...)
	return out
}

// simplifyChain is open-chain Douglas-Peucker; both endpoints are kept.
func simplifyChain(chain []image.Point, epsilon float64) []image.Point {
	if len(chain) <= 2 {
		return chain
	}

	a, b := chain[0], chain[len(chain)-1]
	idx := 0
	maxDist := -1.0
	for i := 1; i < len(chain)-1; i++ {
		if d := segmentDistance(chain[i], a, b); d > maxDist {
			maxDist, idx = d, i
		}
	}

	if maxDist <= epsilon {
		return []image.Point{a, b}
	}

	left := simplifyChain(chain[:idx+1], epsilon)
	right := simplifyChain(chain[idx:], epsilon)

	out := make([]image.Point, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	out = append(out, right...)
	return out
}

// segmentDistance is the distance from p to the segment a-b.
func segmentDistance(p, a, b image.Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return dist(p, a)
	}

	t := (float64(p.X-a.X)*dx + float64(p.Y-a.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))
	px := float64(a.X) + t*dx
	py := float64(a.Y) + t*dy
	return math.Hypot(float64(p.X)-px, float64(p.Y)-py)
}
