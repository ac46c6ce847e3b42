package menu

import (
	"fmt"
	"strings"
)

// Shape is the polygon class of a token. The zero value means the outline
// had no recognized shape.
type Shape int

// Recognized shapes, in declaration order.
const (
	Triangle Shape = iota + 1
	Rectangle
	Pentagon
)

var shapeNames = map[Shape]string{
	Triangle:  "triangle",
	Rectangle: "rectangle",
	Pentagon:  "pentagon",
}

// Shapes returns every recognized shape in declaration order.
func Shapes() []Shape {
	return []Shape{Triangle, Rectangle, Pentagon}
}

// Classify maps the vertex count of an approximated polygon to a shape.
// The boolean is false for any count other than 3, 4 or 5.
func Classify(vertices int) (Shape, bool) {
	switch vertices {
	case 3:
		return Triangle, true
	case 4:
		return Rectangle, true
	case 5:
		return Pentagon, true
	}
	return 0, false
}

// Valid reports whether s is a recognized shape.
func (s Shape) Valid() bool {
	return s >= Triangle && s <= Pentagon
}

// Vertices returns the vertex count that classifies as s, or 0.
func (s Shape) Vertices() int {
	if !s.Valid() {
		return 0
	}
	return int(s) + 2
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "none"
}

// ParseShape parses "triangle", "rectangle" or "pentagon" (case-insensitive).
func ParseShape(s string) (Shape, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, shape := range Shapes() {
		if key == shapeNames[shape] {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", s)
}

// MarshalText encodes the shape by name; an unrecognized shape encodes as "none".
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts anything ParseShape accepts.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
