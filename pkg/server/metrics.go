package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the server's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "kestrel").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// metrics holds the server's Prometheus instruments. A nil *metrics is
// valid and records nothing; that is how disabled metrics are modeled.
type metrics struct {
	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	activeConnections prometheus.Gauge
	parseErrors       prometheus.Counter
	sessionsMinted    prometheus.Counter
}

func newMetrics(config *MetricsConfig) *metrics {
	namespace := config.Namespace
	if namespace == "" {
		namespace = "kestrel"
	}
	buckets := config.Buckets
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	registry := config.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "requests_total",
			Help:        "Total number of HTTP requests dispatched",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "request_duration_seconds",
			Help:        "Request handling duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     buckets,
		}, []string{"path"}),

		activeConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "active_connections",
			Help:        "Number of connections currently being handled",
			ConstLabels: config.ConstLabels,
		}),

		parseErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "parse_errors_total",
			Help:        "Total number of requests rejected as unparseable",
			ConstLabels: config.ConstLabels,
		}),

		sessionsMinted: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "sessions_minted_total",
			Help:        "Total number of sessions created for anonymous clients",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *metrics) recordRequest(path string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path).Observe(d.Seconds())
}

func (m *metrics) connOpened() {
	if m != nil {
		m.activeConnections.Inc()
	}
}

func (m *metrics) connClosed() {
	if m != nil {
		m.activeConnections.Dec()
	}
}

func (m *metrics) recordParseError() {
	if m != nil {
		m.parseErrors.Inc()
	}
}

func (m *metrics) recordSessionMinted() {
	if m != nil {
		m.sessionsMinted.Inc()
	}
}
