package allocate

import (
	"errors"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"bluechips/internal/domain"
)

var (
	// ErrNoParticipants is returned when there is nobody to split between.
	ErrNoParticipants = errors.New("no participants to split between")
	// ErrNoWeight is returned when the weights do not sum to a positive value.
	ErrNoWeight = errors.New("share weights must sum to more than zero")
	// ErrNegativeWeight is returned when any weight is below zero.
	ErrNegativeWeight = errors.New("share weights must not be negative")
)

var cent = decimal.New(1, -2)

// Service allocates amounts in whole cents.
type Service struct {
	pick func(n int) int
	log  *zap.Logger
}

// New returns an allocator drawing leftover-cent winners from src. A nil src
// uses the process-wide random source.
func New(src rand.Source, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	pick := rand.IntN
	if src != nil {
		pick = rand.New(src).IntN
	}
	return &Service{pick: pick, log: log.Named("allocate")}
}

// Allocate splits amount (rounded to cents) across weights. Portions are
// returned in weight order and always sum to the rounded amount.
func (s *Service) Allocate(amount decimal.Decimal, weights []domain.Weight) ([]domain.Portion, error) {
	if len(weights) == 0 {
		return nil, ErrNoParticipants
	}

	total := decimal.Zero
	var eligible []int
	for i, w := range weights {
		if w.Value.IsNegative() {
			return nil, ErrNegativeWeight
		}
		if w.Value.IsPositive() {
			eligible = append(eligible, i)
		}
		total = total.Add(w.Value)
	}
	if !total.IsPositive() {
		return nil, ErrNoWeight
	}

	amount = amount.Round(2)
	portions := make([]domain.Portion, len(weights))
	sum := decimal.Zero
	for i, w := range weights {
		p := amount.Mul(w.Value).Div(total).Round(2)
		portions[i] = domain.Portion{ID: w.ID, Amount: p}
		sum = sum.Add(p)
	}

	diff := amount.Sub(sum)
	step := cent
	if diff.IsNegative() {
		step = cent.Neg()
	}
	n := diff.Abs().Shift(2).IntPart()
	for range n {
		i := eligible[s.pick(len(eligible))]
		portions[i].Amount = portions[i].Amount.Add(step)
	}
	if n > 0 {
		s.log.Debug("distributed rounding cents",
			zap.Int64("cents", n),
			zap.String("direction", step.String()))
	}
	return portions, nil
}

// Even splits amount equally between ids.
func (s *Service) Even(amount decimal.Decimal, ids []domain.ShareID) ([]domain.Portion, error) {
	weights := make([]domain.Weight, len(ids))
	for i, id := range ids {
		weights[i] = domain.Weight{ID: id, Value: decimal.NewFromInt(1)}
	}
	return s.Allocate(amount, weights)
}

// WeightsFromResult converts a split result into allocation weights. Invalid
// shares get zero weight so they still appear in the output.
func WeightsFromResult(res domain.Result) []domain.Weight {
	weights := make([]domain.Weight, len(res.Allocations))
	for i, a := range res.Allocations {
		w := decimal.Zero
		if a.Share.Valid() {
			w = decimal.NewFromFloat(a.Share.Value)
		}
		weights[i] = domain.Weight{ID: a.Entry.ID, Value: w}
	}
	return weights
}

// Compile-time assertion that Service implements domain.Allocator.
var _ domain.Allocator = (*Service)(nil)
