package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts list requests.
	// Labels: status (HTTP status code), page_range (1-10, 11-50, 51-100, 100+)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_list_requests_total",
			Help: "Total number of article list requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks list latency by layer.
	// Labels: operation (handler, service)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "article_list_duration_seconds",
			Help:    "Article list duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// TotalCount holds the total reported by the most recent list request.
	// Labels: filter ("none" for the whole collection, "filtered" otherwise).
	// Only the "none" series tracks the collection size.
	TotalCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "article_list_last_total",
			Help: "Total matching articles reported by the last list request",
		},
		[]string{"filter"},
	)

	// ErrorsTotal counts list errors by type (store, timeout).
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "article_list_errors_total",
			Help: "Total number of article list errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a list request outcome.
func RecordRequest(statusCode int, page int) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), getPageRangeBucket(page)).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// UpdateTotalCount sets the last reported total for filtered or
// unfiltered list requests.
func UpdateTotalCount(count int64, filtered bool) {
	label := "none"
	if filtered {
		label = "filtered"
	}
	TotalCount.WithLabelValues(label).Set(float64(count))
}

// RecordError records an error metric.
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
