package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"bluechips/internal/domain"
	"bluechips/internal/logging"
	"bluechips/internal/metrics"
	"bluechips/internal/services/allocate"
	"bluechips/internal/services/split"
	"bluechips/internal/web"
)

// Wire bundles the services and handlers built from a Config.
type Wire struct {
	Config    *Config
	Logger    *zap.Logger
	Split     domain.SplitService
	Allocator domain.Allocator
	Registry  *prometheus.Registry
	Web       *web.Server
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config) (*Wire, error) {
	log, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, err
	}

	// Metrics registry; left out of the web server when disabled.
	var (
		registry *prometheus.Registry
		recorder domain.SplitRecorder
		gatherer prometheus.Gatherer
	)
	if cfg.Server.Metrics {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder = metrics.NewPrometheus(registry)
		gatherer = registry
	}

	splitSvc := split.New(split.Options{
		Marker:   cfg.Split.IndeterminateMarker,
		Logger:   log,
		Recorder: recorder,
	})
	allocSvc := allocate.New(nil, log)

	srv, err := web.NewServer(web.Options{
		Split:     splitSvc,
		Allocator: allocSvc,
		Logger:    log,
		Gatherer:  gatherer,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{
		Config:    cfg,
		Logger:    log,
		Split:     splitSvc,
		Allocator: allocSvc,
		Registry:  registry,
		Web:       srv,
	}, nil
}
