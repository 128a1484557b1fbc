package web

import (
	"math"

	"github.com/shopspring/decimal"

	"bluechips/internal/domain"
	"bluechips/internal/services/allocate"
)

// SplitRequest is the body of POST /api/split.
type SplitRequest struct {
	Amount string              `json:"amount"`
	Shares []domain.ShareEntry `json:"shares"`
	// Exact additionally returns cent-exact portions.
	Exact bool `json:"exact,omitempty"`
}

// SplitResponse is the reply to POST /api/split. Numeric fields are null or
// omitted when not finite; Display always holds the rendered text.
type SplitResponse struct {
	Amount      *float64             `json:"amount"`
	Total       *float64             `json:"total"`
	Allocations []AllocationResponse `json:"allocations"`
	Portions    []PortionResponse    `json:"portions,omitempty"`
	// PortionsError explains why exact portions could not be computed.
	PortionsError string `json:"portions_error,omitempty"`
}

// AllocationResponse is one entry of SplitResponse.
type AllocationResponse struct {
	ID       domain.ShareID `json:"id"`
	OutputID string         `json:"output_id"`
	Share    *float64       `json:"share,omitempty"`
	Value    *float64       `json:"value,omitempty"`
	Display  string         `json:"display"`
	Valid    bool           `json:"valid"`
	Error    string         `json:"error,omitempty"`
}

// PortionResponse is a cent-exact portion.
type PortionResponse struct {
	ID      domain.ShareID `json:"id"`
	Amount  string         `json:"amount"`
	Display string         `json:"display"`
}

// EvalRequest is the body of POST /api/eval.
type EvalRequest struct {
	Expression string `json:"expression"`
}

// EvalResponse is the reply to POST /api/eval.
type EvalResponse struct {
	Value *float64 `json:"value,omitempty"`
	Valid bool     `json:"valid"`
	Error string   `json:"error,omitempty"`
}

// NewSplitResponse converts a split result for JSON encoding.
func NewSplitResponse(res domain.Result) SplitResponse {
	out := SplitResponse{
		Amount:      finite(res.Amount),
		Total:       finite(res.Total),
		Allocations: make([]AllocationResponse, len(res.Allocations)),
	}
	for i, a := range res.Allocations {
		ar := AllocationResponse{
			ID:       a.Entry.ID,
			OutputID: a.Entry.OutputID(),
			Value:    finite(a.Value),
			Display:  a.Display,
			Valid:    a.Share.Valid(),
		}
		if a.Share.Valid() {
			ar.Share = finite(a.Share.Value)
		} else {
			ar.Error = a.Share.Err.Error()
		}
		out.Allocations[i] = ar
	}
	return out
}

// NewPortionResponses converts exact portions for JSON encoding.
func NewPortionResponses(ps []domain.Portion) []PortionResponse {
	out := make([]PortionResponse, len(ps))
	for i, p := range ps {
		out[i] = PortionResponse{
			ID:      p.ID,
			Amount:  p.Amount.StringFixed(2),
			Display: allocate.FormatUSD(p.Amount),
		}
	}
	return out
}

// NewEvalResponse converts an evaluated share for JSON encoding.
func NewEvalResponse(sh domain.Share) EvalResponse {
	if !sh.Valid() {
		return EvalResponse{Error: sh.Err.Error()}
	}
	return EvalResponse{Value: finite(sh.Value), Valid: true}
}

// finite returns nil for values JSON cannot carry.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// amountDecimal parses the amount for exact allocation.
func amountDecimal(res domain.Result) (decimal.Decimal, bool) {
	if finite(res.Amount) == nil {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(res.Amount), true
}
