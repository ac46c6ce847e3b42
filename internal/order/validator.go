package order

import "github.com/ironsheep/tokenorder/internal/menu"

// Validate applies the completeness rules to an assembled order and returns
// the violations to append after the assembly conflicts.
//
// With neither a starter nor a main course, a single combined violation is
// returned and nothing else is checked. Otherwise each missing mandatory
// category gets its own violation, followed by a single-dish violation when
// the order holds exactly one selection.
func Validate(o *Order) Violations {
	hasStarter := o.Has(menu.Starter)
	hasMain := o.Has(menu.MainCourse)

	if !hasStarter && !hasMain {
		return Violations{{Kind: KindMissingBoth, Message: MsgMissingBoth}}
	}

	var vs Violations
	if !hasStarter {
		vs = append(vs, Violation{Kind: KindMissingStarter, Message: MsgMissingStarter})
	}
	if !hasMain {
		vs = append(vs, Violation{Kind: KindMissingMainCourse, Message: MsgMissingMain})
	}
	if o.Len() == 1 {
		vs = append(vs, Violation{Kind: KindSingleDish, Message: MsgSingleDish})
	}
	return vs
}
