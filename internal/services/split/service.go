package split

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"bluechips/internal/domain"
	"bluechips/internal/expr"
)

// Options configures a Service. The zero value is usable.
type Options struct {
	// Marker replaces the native NaN/Infinity rendering when non-empty.
	Marker string
	Logger *zap.Logger
	// Recorder observes every completed Calculate call; nil disables it.
	Recorder domain.SplitRecorder
}

// Service evaluates share expressions and computes proportional splits.
// It holds no per-call state and is safe for concurrent use.
type Service struct {
	marker   string
	log      *zap.Logger
	recorder domain.SplitRecorder
}

// New returns a split service configured by opts.
func New(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		marker:   opts.Marker,
		log:      log.Named("split"),
		recorder: opts.Recorder,
	}
}

// Validate evaluates one share expression.
func (s *Service) Validate(expression string) domain.Share {
	v, err := expr.Evaluate(expression)
	if err != nil {
		return domain.InvalidShare(err)
	}
	return domain.ValidShare(v)
}

// Calculate runs both phases of a split over the given amount text and
// entries. Allocations are returned in entry order.
func (s *Service) Calculate(amountText string, entries []domain.ShareEntry) domain.Result {
	start := time.Now()
	amount := ParseAmount(amountText)

	shares := make([]domain.Share, len(entries))
	total := 0.0
	for i, e := range entries {
		sh := s.Validate(e.Expression)
		if sh.Valid() {
			total += sh.Value
		} else {
			s.log.Debug("invalid share",
				zap.String("id", e.ID.String()),
				zap.String("expression", e.Expression),
				zap.Error(sh.Err))
		}
		shares[i] = sh
	}
	if total == 0 {
		s.log.Debug("valid shares sum to zero", zap.Int("entries", len(entries)))
	}

	allocations := make([]domain.Allocation, len(entries))
	for i, e := range entries {
		v := amount * shares[i].Value / total
		allocations[i] = domain.Allocation{
			Entry:   e,
			Share:   shares[i],
			Value:   v,
			Display: FormatFixed(v, s.marker),
		}
	}

	res := domain.Result{Amount: amount, Total: total, Allocations: allocations}
	s.log.Debug("split calculated",
		zap.Int("entries", len(entries)),
		zap.Int("invalid", res.Invalid()),
		zap.Float64("total", total))
	if s.recorder != nil {
		s.recorder.RecordSplit(res, time.Since(start))
	}
	return res
}

// Apply reads the amount and share entries from page, calculates the split
// and writes every entry's display string to its output element. A failed
// write does not stop the others; all write errors are returned joined.
func (s *Service) Apply(ctx context.Context, page domain.Page) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}

	res := s.Calculate(page.AmountText(), page.ShareEntries())

	var errs []error
	for _, a := range res.Allocations {
		if err := page.SetOutput(a.Entry.OutputID(), a.Display); err != nil {
			errs = append(errs, fmt.Errorf("writing %s: %w", a.Entry.OutputID(), err))
		}
	}
	return res, errors.Join(errs...)
}

// Compile-time assertion that Service implements domain.SplitService.
var _ domain.SplitService = (*Service)(nil)
