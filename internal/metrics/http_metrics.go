package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// NotificationFanOutCounter counts notification rows written per fan-out kind
	NotificationFanOutCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_fanout_rows_total",
			Help: "Total number of notification rows created, by fan-out kind",
		},
		[]string{"kind"}, // user | admins | system
	)
)

// registerOnce guards the shared collectors: they are package-level, so a
// second HTTPMetrics in the same process must not re-register them.
var registerOnce sync.Once

// HTTPMetrics holds configuration and state for HTTP metrics collection
type HTTPMetrics struct {
	ServiceName string
}

// NewHTTPMetrics creates a new HTTP metrics collector for a specific service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDurationHistogram)
		prometheus.MustRegister(NotificationFanOutCounter)
	})
	return &HTTPMetrics{ServiceName: serviceName}
}

// Middleware records request count and duration for every handled request.
// The route template (c.FullPath), not the raw URL, keeps label cardinality
// bounded.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusStr := strconv.Itoa(c.Writer.Status())

		RequestCounter.WithLabelValues(m.ServiceName, c.Request.Method, path, statusStr).Inc()
		RequestDurationHistogram.WithLabelValues(m.ServiceName, c.Request.Method, path, statusStr).
			Observe(time.Since(start).Seconds())
	}
}

// ObserveFanOut adds created notification rows to the fan-out counter.
func ObserveFanOut(kind string, rows int) {
	NotificationFanOutCounter.WithLabelValues(kind).Add(float64(rows))
}

// GetPrometheusHandler returns an HTTP handler for exposing Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}
