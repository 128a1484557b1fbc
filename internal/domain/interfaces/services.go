package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	domaintypes "bluechips/internal/domain/types"
)

// Evaluator turns a share expression into a Share.
type Evaluator interface {
	Validate(expression string) domaintypes.Share
}

// SplitService computes proportional splits and renders them into pages.
type SplitService interface {
	Evaluator
	Calculate(amountText string, entries []domaintypes.ShareEntry) domaintypes.Result
	Apply(ctx context.Context, page Page) (domaintypes.Result, error)
}

// Allocator splits an amount into cent-exact portions.
type Allocator interface {
	Allocate(amount decimal.Decimal, weights []Weight) ([]domaintypes.Portion, error)
	Even(amount decimal.Decimal, ids []domaintypes.ShareID) ([]domaintypes.Portion, error)
}

// Weight is a participant's relative share for exact allocation.
type Weight struct {
	ID    domaintypes.ShareID
	Value decimal.Decimal
}
