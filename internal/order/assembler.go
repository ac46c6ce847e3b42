package order

import "github.com/ironsheep/tokenorder/internal/menu"

// Assembler resolves observations against a catalog. It holds no per-run
// state, so one Assembler may serve any number of concurrent runs.
type Assembler struct {
	catalog *menu.Catalog
}

// NewAssembler returns an assembler that prices dishes from catalog.
func NewAssembler(catalog *menu.Catalog) *Assembler {
	return &Assembler{catalog: catalog}
}

// Assemble walks observations in the order given and builds the order.
//
// Observations without a recognized shape are skipped. The first recognized
// observation of a category becomes its selection, priced from the catalog
// (unknown pairs become a zero-price "Unknown Dish" that still occupies the
// category). The next recognized observation of the same category appends a
// single conflict violation and closes the category: any later observation
// of that category is ignored without another violation. Other categories
// are unaffected.
//
// The returned violations hold conflicts only; run Validate afterwards for
// completeness rules.
func (a *Assembler) Assemble(observations []Observation) (*Order, Violations) {
	o := newOrder()
	var violations Violations
	closed := make(map[menu.Category]bool)

	for _, obs := range observations {
		if !obs.Recognized() || closed[obs.Category] {
			continue
		}
		if o.Has(obs.Category) {
			violations = append(violations, conflict(obs.Category))
			closed[obs.Category] = true
			continue
		}

		entry := a.catalog.Lookup(obs.Category, obs.Shape)
		o.add(Selection{
			Category: obs.Category,
			Name:     entry.Name,
			Shape:    obs.Shape,
			Price:    entry.Price,
			Box:      obs.Box,
		})
	}

	return o, violations
}
