package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	// HTTPRequestsTotal counts HTTP requests by method, normalized path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration buckets cover 5ms to 10s.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// HTTPResponseSize measures response body size in bytes.
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPRequestsInFlight tracks requests currently being served.
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Document store metrics
var (
	// StoreOperationDuration measures MongoDB operation latency.
	// Labels: operation (count, find, find_one, ping), status (ok, error)
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "status"},
	)

	// StoreErrorsTotal counts failed document store operations.
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total number of failed document store operations",
		},
		[]string{"operation"},
	)

	// ArticlesNotFoundTotal counts slug lookups that matched nothing.
	ArticlesNotFoundTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_not_found_total",
			Help: "Total number of article lookups by slug that found no document",
		},
	)
)

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration, responseSize int) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}

// RecordStoreOperation records the latency and outcome of a store operation.
func RecordStoreOperation(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		StoreErrorsTotal.WithLabelValues(operation).Inc()
	}
	StoreOperationDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// RecordArticleNotFound increments the not-found counter.
func RecordArticleNotFound() {
	ArticlesNotFoundTotal.Inc()
}
