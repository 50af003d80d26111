// Package monitoring exposes Prometheus metrics for the scoring server: HTTP
// request counts and latencies, plus a per-scorer computation counter so
// dashboards can see which scorers actually get traffic.
package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	scoresTotal     *prometheus.CounterVec
	rateLimited     prometheus.Counter
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketscore_http_requests_total",
			Help: "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "marketscore_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		scoresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketscore_scores_computed_total",
			Help: "Scoring computations by scorer name.",
		}, []string{"scorer"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "marketscore_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter.",
		}),
	}

	registry.MustRegister(m.requestsTotal, m.requestDuration, m.scoresTotal, m.rateLimited)
	return m
}

// Middleware records request counts and latency for every route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.requestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ScoreComputed counts one scoring computation for the named scorer.
func (m *Metrics) ScoreComputed(scorer string) {
	m.scoresTotal.WithLabelValues(scorer).Inc()
}

// RateLimited counts one throttled request.
func (m *Metrics) RateLimited() {
	m.rateLimited.Inc()
}

// Handler serves the /metrics scrape endpoint.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
