package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	deriskRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "data_api_client",
		Name:      "operations_total",
		Help:      "Count of event API requests.",
	}, []string{"operation", "status"})
	deriskRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "data_api_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of event API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	deriskDroppedEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "data_api_client",
		Name:      "dropped_events_total",
		Help:      "Count of upstream events dropped during conversion.",
	}, []string{"reason"})
)

// DataAPIClient tracks metrics for calls to the DeRisk event API.
type DataAPIClient struct{}

// NewDataAPIClient constructs a metrics collector for event API calls.
func NewDataAPIClient() *DataAPIClient {
	return &DataAPIClient{}
}

// Observe records a single API call outcome and duration.
func (m DataAPIClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	deriskRequestsTotal.WithLabelValues(operation, status).Inc()
	deriskRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// Dropped records an upstream event that could not be converted.
func (m DataAPIClient) Dropped(reason string) {
	deriskDroppedEventsTotal.WithLabelValues(reason).Inc()
}
