// Package rtrmetrics counts route recognitions with Prometheus.
package rtrmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rohanthewiz/routerec/core/rtr"
)

// NoMatchLabel is the pattern label used for paths no route matched.
const NoMatchLabel = "<none>"

// Config configures the recognition metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "routerec").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the recognition metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "routerec",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Router wraps an rtr.Router and counts every recognition.
// Counters are labeled by the normalized pattern of the matched route,
// so cardinality is bounded by the number of registered patterns.
type Router[T any] struct {
	*rtr.Router[T]
	recognitions *prometheus.CounterVec
	routes       prometheus.GaugeFunc
}

// Instrument registers the recognition metrics and wraps router.
// Registration errors (e.g. duplicate metrics on the same registry) are returned.
func Instrument[T any](router *rtr.Router[T], opts ...Option) (*Router[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ir := &Router[T]{
		Router: router,
		recognitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "recognitions_total",
			Help:        "Total number of path recognitions by matched pattern.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"pattern", "result"}),
		routes: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "routes",
			Help:        "Number of registered routes.",
			ConstLabels: cfg.ConstLabels,
		}, func() float64 { return float64(router.Len()) }),
	}

	if err := cfg.Registry.Register(ir.recognitions); err != nil {
		return nil, err
	}
	if err := cfg.Registry.Register(ir.routes); err != nil {
		cfg.Registry.Unregister(ir.recognitions)
		return nil, err
	}

	return ir, nil
}

// Recognize finds the route matching path and counts the outcome.
func (ir *Router[T]) Recognize(path string) (rtr.Match, bool) {
	m, ok := ir.Router.Recognize(path)
	ir.observe(m, ok)
	return m, ok
}

// Lookup finds the handler and parameters for path and counts the outcome.
func (ir *Router[T]) Lookup(path string) (T, rtr.Params, bool) {
	m, ok := ir.Recognize(path)
	if !ok {
		var empty T
		return empty, nil, false
	}

	handler, live := ir.Handler(m.Route)
	return handler, m.Params, live
}

func (ir *Router[T]) observe(m rtr.Match, ok bool) {
	if !ok {
		ir.recognitions.WithLabelValues(NoMatchLabel, "miss").Inc()
		return
	}

	pattern := NoMatchLabel
	if p, live := ir.Pattern(m.Route); live {
		pattern = p.String()
	}
	ir.recognitions.WithLabelValues(pattern, "hit").Inc()
}
