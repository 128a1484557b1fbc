package types

import "github.com/shopspring/decimal"

// Allocation is one participant's slice of the amount.
type Allocation struct {
	Entry ShareEntry
	Share Share
	// Value is amount*share/total, NaN or ±Inf when indeterminate.
	Value float64
	// Display is the text written to the output element.
	Display string
}

// Result is the outcome of one split pass. Values may be non-finite, so it
// is not JSON encoded directly.
type Result struct {
	Amount      float64
	Total       float64
	Allocations []Allocation
}

// Invalid returns the number of allocations whose share failed to evaluate.
func (r Result) Invalid() int {
	n := 0
	for _, a := range r.Allocations {
		if !a.Share.Valid() {
			n++
		}
	}
	return n
}

// Portion is a cent-exact amount owed by one participant.
type Portion struct {
	ID     ShareID         `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}
