package order

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/tokenorder/internal/menu"
)

// Selection is the dish chosen for one category.
type Selection struct {
	Category menu.Category `json:"category"`
	Name     string        `json:"name"`
	Shape    menu.Shape    `json:"shape"`
	Price    int           `json:"price"`

	// Box is the region of the token that produced this selection.
	Box Box `json:"box"`
}

// Label formats the selection as "<name> (<price> TL)".
func (s Selection) Label() string {
	return fmt.Sprintf("%s (%d TL)", s.Name, s.Price)
}

// Order maps categories to selections and remembers insertion order. An
// Order holds at most one Selection per category. It is read-only once
// Assemble has returned it.
type Order struct {
	selections []Selection
	index      map[menu.Category]int
}

func newOrder() *Order {
	return &Order{index: make(map[menu.Category]int)}
}

// add inserts s. It reports false, leaving the order untouched, when the
// category already has a selection.
func (o *Order) add(s Selection) bool {
	if _, ok := o.index[s.Category]; ok {
		return false
	}
	o.index[s.Category] = len(o.selections)
	o.selections = append(o.selections, s)
	return true
}

// Len returns the number of selections.
func (o *Order) Len() int {
	if o == nil {
		return 0
	}
	return len(o.selections)
}

// Empty reports whether no category was selected.
func (o *Order) Empty() bool {
	return o.Len() == 0
}

// Has reports whether the category has a selection.
func (o *Order) Has(c menu.Category) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[c]
	return ok
}

// Get returns the selection for a category.
func (o *Order) Get(c menu.Category) (Selection, bool) {
	if o == nil {
		return Selection{}, false
	}
	i, ok := o.index[c]
	if !ok {
		return Selection{}, false
	}
	return o.selections[i], true
}

// Selections returns a copy of the selections in insertion order.
func (o *Order) Selections() []Selection {
	if o == nil {
		return []Selection{}
	}
	out := make([]Selection, len(o.selections))
	copy(out, o.selections)
	return out
}

// MarshalJSON encodes the order as its selection list.
func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Selections())
}
