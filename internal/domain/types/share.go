package types

import "math"

// ShareEntry is one participant's raw share expression as entered on the page.
type ShareEntry struct {
	ID         ShareID `json:"id"`
	Expression string  `json:"expression"`
}

// OutputID returns the id of the element the entry's amount is written to.
func (e ShareEntry) OutputID() string { return e.ID.OutputID() }

// Share is the evaluated form of a ShareEntry. An invalid share carries the
// evaluation error and a NaN value.
type Share struct {
	Value float64
	Err   error
}

// ValidShare returns a Share holding v.
func ValidShare(v float64) Share { return Share{Value: v} }

// InvalidShare returns a Share marked invalid by err.
func InvalidShare(err error) Share { return Share{Value: math.NaN(), Err: err} }

// Valid reports whether the expression evaluated to a finite number.
func (s Share) Valid() bool { return s.Err == nil }
