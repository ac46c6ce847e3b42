package menu

import "fmt"

// UnknownDish is the name reported for a (category, shape) pair that the
// catalog does not define.
const UnknownDish = "Unknown Dish"

// Entry is one dish on the menu.
type Entry struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// Key addresses a catalog entry.
type Key struct {
	Category Category
	Shape    Shape
}

// Item is a catalog entry together with its key, used for listings.
type Item struct {
	Category Category `json:"category"`
	Shape    Shape    `json:"shape"`
	Entry
}

// Catalog maps (category, shape) pairs to dishes. It is never modified after
// NewCatalog returns.
type Catalog struct {
	entries map[Key]Entry
}

// NewCatalog builds a catalog from the given entries. The map is copied.
// Keys must use valid categories and shapes, and prices must not be negative.
func NewCatalog(entries map[Key]Entry) (*Catalog, error) {
	copied := make(map[Key]Entry, len(entries))
	for k, e := range entries {
		if !k.Category.Valid() {
			return nil, fmt.Errorf("invalid category %v", k.Category)
		}
		if !k.Shape.Valid() {
			return nil, fmt.Errorf("invalid shape for %s", k.Category)
		}
		if e.Price < 0 {
			return nil, fmt.Errorf("%s %s: negative price %d", k.Category, k.Shape, e.Price)
		}
		copied[k] = e
	}
	return &Catalog{entries: copied}, nil
}

// DefaultCatalog returns the standard 4×3 menu.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultEntries returns a fresh copy of the standard menu table.
func DefaultEntries() map[Key]Entry {
	return map[Key]Entry{
		{Starter, Rectangle}: {"Soup", 15},
		{Starter, Pentagon}:  {"Cheese Platter", 16},
		{Starter, Triangle}:  {"Garlic Bread", 22},

		{Snack, Rectangle}: {"Crispy Chicken", 20},
		{Snack, Pentagon}:  {"Fish&Chips", 18},
		{Snack, Triangle}:  {"Omlet", 12},

		{MainCourse, Rectangle}: {"Meatballs", 30},
		{MainCourse, Pentagon}:  {"Casseroles", 28},
		{MainCourse, Triangle}:  {"Fajitas", 25},

		{Dessert, Rectangle}: {"Souffle", 17},
		{Dessert, Pentagon}:  {"Tiramisu", 19},
		{Dessert, Triangle}:  {"Cheesecake", 21},
	}
}

// Lookup returns the dish for (category, shape). Pairs the catalog does not
// define, including an unrecognized shape, yield Entry{UnknownDish, 0}.
func (c *Catalog) Lookup(category Category, shape Shape) Entry {
	if e, ok := c.entries[Key{category, shape}]; ok {
		return e
	}
	return Entry{Name: UnknownDish, Price: 0}
}

// Has reports whether (category, shape) is defined.
func (c *Catalog) Has(category Category, shape Shape) bool {
	_, ok := c.entries[Key{category, shape}]
	return ok
}

// Len returns the number of defined dishes.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Items lists the defined dishes in category order, then shape order.
func (c *Catalog) Items() []Item {
	items := make([]Item, 0, len(c.entries))
	for _, cat := range Categories() {
		for _, shape := range Shapes() {
			if e, ok := c.entries[Key{cat, shape}]; ok {
				items = append(items, Item{Category: cat, Shape: shape, Entry: e})
			}
		}
	}
	return items
}
