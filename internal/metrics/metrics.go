// Package metrics exposes the Prometheus collectors of the service and the gin middleware
// that feeds them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// unmatchedRoute labels requests that hit no registered route, so arbitrary paths
// cannot blow up label cardinality.
const unmatchedRoute = "unmatched"

// Metrics holds one registry per process.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpErrors   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	serviceUp    prometheus.Gauge
}

// New creates and registers the collectors. The service name is attached as a constant
// label to every series.
func New(serviceName string) *Metrics {
	started := time.Now()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status_code"},
		),
		httpErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_request_errors_total",
				Help:        "Total number of HTTP requests answered with status >= 400",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status_code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "Duration of HTTP requests in seconds",
				ConstLabels: constLabels,
				Buckets:     []float64{0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		serviceUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "service_up",
			Help:        "Service health status",
			ConstLabels: constLabels,
		}),
	}

	uptime := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name:        "service_uptime_seconds",
			Help:        "Service uptime in seconds",
			ConstLabels: constLabels,
		},
		func() float64 { return time.Since(started).Seconds() },
	)

	m.Registry.MustRegister(
		m.httpRequests,
		m.httpErrors,
		m.httpDuration,
		m.serviceUp,
		uptime,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	m.serviceUp.Set(1)
	return m
}

// SetUp flips the service_up gauge.
func (m *Metrics) SetUp(up bool) {
	if up {
		m.serviceUp.Set(1)
		return
	}
	m.serviceUp.Set(0)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Middleware records request count, errors and latency per gin route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		m.httpRequests.WithLabelValues(method, route, status).Inc()
		if c.Writer.Status() >= http.StatusBadRequest {
			m.httpErrors.WithLabelValues(method, route, status).Inc()
		}
		m.httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
