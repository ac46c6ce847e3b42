package order

import "strings"

// Summarize returns the display line and the total price of an order.
// Dishes appear in insertion order as "<name> (<price> TL)", joined by ", ".
func Summarize(o *Order) (string, int) {
	parts := make([]string, 0, o.Len())
	total := 0
	for _, s := range o.Selections() {
		parts = append(parts, s.Label())
		total += s.Price
	}
	return strings.Join(parts, ", "), total
}
