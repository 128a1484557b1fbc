// Package metrics exports Prometheus metrics for split calculations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bluechips/internal/domain"
	"bluechips/internal/services/split"
)

const namespace = "bluechips"

// Share evaluation outcomes used as the "result" label.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultEmpty   = "empty"
)

// Prometheus records split passes.
//
//	registry := prometheus.NewRegistry()
//	m := metrics.NewPrometheus(registry)
//	svc := split.New(split.Options{Recorder: m})
type Prometheus struct {
	splits        prometheus.Counter
	shares        *prometheus.CounterVec
	indeterminate prometheus.Counter
	duration      prometheus.Histogram
}

// NewPrometheus registers the split metrics with registry, or with the
// default registerer when registry is nil.
func NewPrometheus(registry prometheus.Registerer) *Prometheus {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Prometheus{
		splits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_total",
			Help:      "Completed split calculations",
		}),
		shares: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shares_total",
			Help:      "Evaluated share expressions by outcome",
		}, []string{"result"}), // result: valid, invalid, empty
		indeterminate: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indeterminate_outputs_total",
			Help:      "Outputs rendered as the indeterminate marker",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "split_duration_seconds",
			Help:      "Time spent evaluating and computing one split",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs to ~160ms
		}),
	}
}

// RecordSplit implements domain.SplitRecorder.
func (m *Prometheus) RecordSplit(res domain.Result, elapsed time.Duration) {
	m.splits.Inc()
	m.duration.Observe(elapsed.Seconds())
	for _, a := range res.Allocations {
		switch {
		case !a.Share.Valid():
			m.shares.WithLabelValues(ResultInvalid).Inc()
		case isBlank(a.Entry.Expression):
			m.shares.WithLabelValues(ResultEmpty).Inc()
		default:
			m.shares.WithLabelValues(ResultValid).Inc()
		}
		if split.IsIndeterminate(a.Value) {
			m.indeterminate.Inc()
		}
	}
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			return false
		}
	}
	return true
}

// Compile-time assertion that Prometheus implements domain.SplitRecorder.
var _ domain.SplitRecorder = (*Prometheus)(nil)
