package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"bluechips/internal/domain"
	"bluechips/internal/metrics"
	"bluechips/internal/services/split"
)

func TestRecordSplit(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewPrometheus(registry)
	svc := split.New(split.Options{Recorder: m})

	svc.Calculate("50", []domain.ShareEntry{
		{ID: "a", Expression: "abc"},
		{ID: "b", Expression: "3"},
		{ID: "c", Expression: " "},
	})
	svc.Calculate("100", []domain.ShareEntry{
		{ID: "a", Expression: ""},
		{ID: "b", Expression: "0"},
	})

	want := `
# HELP bluechips_indeterminate_outputs_total Outputs rendered as the indeterminate marker
# TYPE bluechips_indeterminate_outputs_total counter
bluechips_indeterminate_outputs_total 3
# HELP bluechips_shares_total Evaluated share expressions by outcome
# TYPE bluechips_shares_total counter
bluechips_shares_total{result="empty"} 2
bluechips_shares_total{result="invalid"} 1
bluechips_shares_total{result="valid"} 2
# HELP bluechips_splits_total Completed split calculations
# TYPE bluechips_splits_total counter
bluechips_splits_total 2
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(want),
		"bluechips_splits_total", "bluechips_shares_total", "bluechips_indeterminate_outputs_total")
	if err != nil {
		t.Fatalf("metrics mismatch: %v", err)
	}

	n, err := testutil.GatherAndCount(registry, "bluechips_split_duration_seconds")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 1 {
		t.Fatalf("want duration histogram, got %d series", n)
	}
}
