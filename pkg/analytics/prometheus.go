package analytics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// PrometheusConfig configures the Prometheus sink.
type PrometheusConfig struct {
	// Namespace is the metrics namespace (default: "payform").
	Namespace string
	// Subsystem is the metrics subsystem (default: "analytics").
	Subsystem string
	// Registry is the registerer to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
	// Logger receives registration diagnostics.
	Logger *zap.Logger
}

// PrometheusOption configures the Prometheus sink.
type PrometheusOption func(*PrometheusConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) PrometheusOption {
	return func(c *PrometheusConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) PrometheusOption {
	return func(c *PrometheusConfig) {
		c.Subsystem = subsystem
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) PrometheusOption {
	return func(c *PrometheusConfig) {
		c.Registry = registry
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) PrometheusOption {
	return func(c *PrometheusConfig) {
		c.Logger = logger
	}
}

func defaultPrometheusConfig() PrometheusConfig {
	return PrometheusConfig{
		Namespace: "payform",
		Subsystem: "analytics",
		Registry:  prometheus.DefaultRegisterer,
		Logger:    zap.NewNop(),
	}
}

// PrometheusSink counts form presentations by component, flavor, and
// environment.
type PrometheusSink struct {
	presented *prometheus.CounterVec
	logger    *zap.Logger
}

// NewPrometheusSink registers the presentation counter. When an identical
// collector is already registered it is reused.
func NewPrometheusSink(opts ...PrometheusOption) (*PrometheusSink, error) {
	cfg := defaultPrometheusConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	presented := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      "forms_presented_total",
		Help:      "Number of payment forms presented, by component and flavor.",
	}, []string{"component", "flavor", "environment"})

	if cfg.Registry != nil {
		if err := cfg.Registry.Register(presented); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			cfg.Logger.Debug("reusing registered analytics collector")
			presented = existing
		}
	}

	return &PrometheusSink{presented: presented, logger: cfg.Logger}, nil
}

// Send implements Sink.
func (s *PrometheusSink) Send(event Event) {
	if s == nil {
		return
	}
	s.presented.WithLabelValues(event.Component, string(event.Flavor), event.Environment).Inc()
	s.logger.Debug("analytics event",
		zap.String("id", event.ID),
		zap.String("component", event.Component),
		zap.String("flavor", string(event.Flavor)),
	)
}

// Collector exposes the underlying counter, mainly for tests and custom
// exporters.
func (s *PrometheusSink) Collector() *prometheus.CounterVec {
	return s.presented
}
