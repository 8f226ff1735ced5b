package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UnmatchedRoute is the route label of requests no route matched.
const UnmatchedRoute = "unmatched"

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "bloxi").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "bloxi",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the page render metrics.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	inFlight       prometheus.Gauge
	sheetPublishes *prometheus.CounterVec
}

// NewMetrics registers the metrics on the configured registry. Registering
// twice on the same registry panics; use Prometheus for the shared default.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of page requests served, by route and status code",
			ConstLabels: config.ConstLabels,
		}, []string{"route", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Page request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"route"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of page requests that ended in a server error",
			ConstLabels: config.ConstLabels,
		}, []string{"route"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_in_flight",
			Help:        "Number of page requests currently being served",
			ConstLabels: config.ConstLabels,
		}),

		sheetPublishes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "stylesheet_publishes_total",
			Help:        "Total number of stylesheet publishes, by target and result",
			ConstLabels: config.ConstLabels,
		}, []string{"target", "result"}),
	}
}

var (
	globalMetrics   *Metrics
	globalMetricsMu sync.Mutex
)

// Prometheus returns chi middleware recording render metrics. The metrics
// are created on the first call; later calls reuse them and ignore opts.
//
// Metrics collected:
//   - bloxi_renders_total: Counter of requests by route pattern and status
//   - bloxi_render_duration_seconds: Histogram of request duration by route
//   - bloxi_render_errors_total: Counter of 5xx responses by route
//   - bloxi_renders_in_flight: Gauge of requests being served
//
// Example:
//
//	r := router.New(router.Config{})
//	r.Use(middleware.Prometheus())
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = NewMetrics(opts...)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return m.Handler
}

// Handler is chi middleware recording metrics for every request. The route
// label is the chi pattern that matched, so it stays low-cardinality.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := routeLabel(r)

		m.renderDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.rendersTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
		if status >= http.StatusInternalServerError {
			m.renderErrors.WithLabelValues(route).Inc()
		}
	})
}

// RecordPublish counts a stylesheet publish to target.
func (m *Metrics) RecordPublish(target string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.sheetPublishes.WithLabelValues(target, result).Inc()
}

// RecordPublish counts a stylesheet publish on the shared metrics, if
// Prometheus has been called.
func RecordPublish(target string, err error) {
	globalMetricsMu.Lock()
	m := globalMetrics
	globalMetricsMu.Unlock()
	if m != nil {
		m.RecordPublish(target, err)
	}
}

// routeLabel returns the matched chi pattern. It must be called after the
// request was routed.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return UnmatchedRoute
}
