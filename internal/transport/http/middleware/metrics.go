package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry carries only this service's series.
var (
	registry = prometheus.NewRegistry()

	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "users_api_http_requests_total",
			Help: "HTTP requests served by the users API.",
		},
		[]string{"path", "method", "status"},
	)
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "users_api_http_request_duration_seconds",
			Help:    "Latency of users API requests.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"path", "method"},
	)
	reqInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "users_api_http_requests_in_flight",
		Help: "Requests currently being served.",
	})
)

func init() { registry.MustRegister(reqTotal, reqDuration, reqInFlight) }

// MetricsHandler exposes the service registry.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInFlight.Inc()
		c.Next()
		reqInFlight.Dec()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		reqTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		reqDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
