package prometheus

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector implements MetricsCollector using Prometheus
type Collector struct {
	registerer prometheus.Registerer

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	itemsCreated     prometheus.Counter
	itemsRead        prometheus.Counter
}

// Option applies a configuration option to the Collector.
type Option func(*Collector)

// WithRegisterer sets the registerer metrics are registered against.
// The default registerer is used when this option is not given.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Collector) {
		if reg != nil {
			c.registerer = reg
		}
	}
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		registerer: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(c)
	}

	factory := promauto.With(c.registerer)

	c.requestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webstart_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)
	c.requestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webstart_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "path"},
	)
	c.requestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "webstart_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)
	c.itemsCreated = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "webstart_items_created_total",
			Help: "Total number of items accepted by the create endpoint",
		},
	)
	c.itemsRead = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "webstart_items_read_total",
			Help: "Total number of item lookups served",
		},
	)

	return c
}

// ObserveRequest records a completed HTTP request
func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncRequestsInFlight increments the in-flight request gauge
func (c *Collector) IncRequestsInFlight() {
	c.requestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight request gauge
func (c *Collector) DecRequestsInFlight() {
	c.requestsInFlight.Dec()
}

// IncItemsCreated increments the count of created items
func (c *Collector) IncItemsCreated() {
	c.itemsCreated.Inc()
}

// IncItemsRead increments the count of item lookups
func (c *Collector) IncItemsRead() {
	c.itemsRead.Inc()
}
