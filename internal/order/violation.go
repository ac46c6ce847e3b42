package order

import (
	"encoding/json"

	"github.com/ironsheep/tokenorder/internal/menu"
)

// User-facing messages.
const (
	MsgConflict        = "Caution: You can only choose one food from the same group."
	MsgMissingBoth     = "Caution: To continue, you must select one main course and one starter."
	MsgMissingStarter  = "Caution: To continue, you must select one starter."
	MsgMissingMain     = "Caution: To continue, you must select one main course."
	MsgSingleDish      = "Caution: To continue, you must select more than one dish."
	MsgNoOrder         = "Error: No valid orders detected."
	MsgConfirmPrompt   = "Do you confirm your order? (yes/no): "
	MsgCanceled        = "Your order has been canceled."
	msgSummaryFormat   = "Your order is: %s. "
	msgConfirmedFormat = "Your food is being prepared. The total amount you have to pay: %d TL."
)

// Kind classifies a violation.
type Kind int

const (
	// KindConflict is a second token in a category that already has a selection.
	KindConflict Kind = iota + 1
	// KindMissingBoth means neither a starter nor a main course was selected.
	KindMissingBoth
	KindMissingStarter
	KindMissingMainCourse
	// KindSingleDish means the order has exactly one selection.
	KindSingleDish
)

var kindNames = map[Kind]string{
	KindConflict:          "conflict",
	KindMissingBoth:       "missing_starter_and_main_course",
	KindMissingStarter:    "missing_starter",
	KindMissingMainCourse: "missing_main_course",
	KindSingleDish:        "single_dish",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Violation is a business-rule failure. It never aborts processing.
type Violation struct {
	Kind Kind `json:"kind"`

	// Category is set for conflicts only.
	Category menu.Category `json:"category,omitempty"`

	Message string `json:"message"`
}

// Violations is an ordered list of violations. Order is significant: it is
// the order in which messages are shown to the customer.
type Violations []Violation

// Messages returns the message of each violation, in order.
func (vs Violations) Messages() []string {
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.Message
	}
	return msgs
}

// Count returns how many violations have the given kind.
func (vs Violations) Count(kind Kind) int {
	n := 0
	for _, v := range vs {
		if v.Kind == kind {
			n++
		}
	}
	return n
}

// MarshalJSON encodes a nil list as [] so consumers never see null.
func (vs Violations) MarshalJSON() ([]byte, error) {
	if vs == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Violation(vs))
}

func conflict(category menu.Category) Violation {
	return Violation{Kind: KindConflict, Category: category, Message: MsgConflict}
}
