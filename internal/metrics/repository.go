package metrics

import (
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"storage", "operation", "protocol", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"storage", "operation", "protocol", "status"})
)

// Repository tracks metrics for storage operations of one backend.
type Repository struct {
	storage string
}

// NewRepository creates a Repository metrics collector labelled with storage.
func NewRepository(storage string) *Repository {
	if storage == "" {
		storage = "unknown"
	}
	return &Repository{storage: storage}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, protocol model.Protocol, err error, started time.Time) {
	if protocol == "" {
		protocol = "unknown"
	}
	status := statusOf(err)

	repositoryRequestsTotal.WithLabelValues(m.storage, operation, string(protocol), status).Inc()
	repositoryRequestDuration.WithLabelValues(m.storage, operation, string(protocol), status).Observe(time.Since(started).Seconds())
}
