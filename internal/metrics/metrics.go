// Package metrics exposes Prometheus instrumentation for the HTTP
// surface and the login flow.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LoginAttempts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Login attempts, successful or not.",
	})

	LoginFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "login_failures_total",
		Help: "Login attempts rejected for unknown user or bad password.",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, LoginAttempts, LoginFailures)
}

// Middleware records a counter and latency sample per request, keyed
// by the route pattern rather than the raw path to bound cardinality.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus exposition endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
