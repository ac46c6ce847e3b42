package menu

import (
	"fmt"
	"strings"
)

// Category identifies a menu group. Each category maps to one token color.
type Category int

// Categories in declaration order. The zero value is not a category.
const (
	Starter Category = iota + 1
	Snack
	MainCourse
	Dessert
)

var categoryNames = map[Category]string{
	Starter:    "starter",
	Snack:      "snack",
	MainCourse: "main_course",
	Dessert:    "dessert",
}

var categoryColors = map[Category]string{
	Starter:    "green",
	Snack:      "yellow",
	MainCourse: "orange",
	Dessert:    "blue",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{Starter, Snack, MainCourse, Dessert}
}

// Valid reports whether c is one of the four declared categories.
func (c Category) Valid() bool {
	return c >= Starter && c <= Dessert
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Color returns the token color that selects this category.
func (c Category) Color() string {
	return categoryColors[c]
}

// ParseCategory accepts a category name ("starter", "main_course", ...) or
// its token color ("green", "orange", ...). Matching is case-insensitive and
// treats '-' and ' ' like '_'.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for _, c := range Categories() {
		if key == categoryNames[c] || key == categoryColors[c] {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts anything ParseCategory accepts.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
