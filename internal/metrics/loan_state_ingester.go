// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/chain"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "derisk"

var (
	ingesterFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "fetch_total",
		Help:      "Count of event page fetches.",
	}, []string{"protocol", "status"})

	ingesterFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of fetching one event page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"protocol", "status"})

	ingesterFetchEvents = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "fetch_events",
		Help:      "Number of events returned per page.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"protocol"})

	ingesterFoldedEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "folded_events_total",
		Help:      "Count of folded events by outcome.",
	}, []string{"protocol", "outcome"})

	ingesterFoldDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "fold_duration_seconds",
		Help:      "Duration of ordering and folding one page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"protocol"})

	ingesterPersistTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "persist_total",
		Help:      "Count of snapshot persists.",
	}, []string{"protocol", "status"})

	ingesterPersistDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "persist_duration_seconds",
		Help:      "Duration of persisting one snapshot.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"protocol", "status"})

	ingesterPersistRows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "persist_rows",
		Help:      "Number of loan state rows per snapshot.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1..262144
	}, []string{"protocol"})

	ingesterEmptyPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "empty_pages_total",
		Help:      "Count of pages that returned no events.",
	}, []string{"protocol"})

	ingesterCheckpoint = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "loan_state_ingester",
		Name:      "checkpoint_block",
		Help:      "First block not yet folded.",
	}, []string{"protocol"})
)

// LoanStateIngester tracks metrics for the loan state ingestion loop.
type LoanStateIngester struct {
	protocol string
}

// NewLoanStateIngester constructs a LoanStateIngester for protocol.
func NewLoanStateIngester(protocol model.Protocol) *LoanStateIngester {
	if protocol == "" {
		protocol = "unknown"
	}
	return &LoanStateIngester{protocol: string(protocol)}
}

// ObserveFetch records one page fetch and the number of events it returned.
func (m LoanStateIngester) ObserveFetch(err error, events int, started time.Time) {
	status := statusOf(err)
	ingesterFetchTotal.WithLabelValues(m.protocol, status).Inc()
	ingesterFetchDuration.WithLabelValues(m.protocol, status).Observe(time.Since(started).Seconds())
	if err == nil {
		ingesterFetchEvents.WithLabelValues(m.protocol).Observe(float64(events))
	}
}

// ObserveFold records the outcome counts of folding one page.
func (m LoanStateIngester) ObserveFold(stats chain.FoldStats, started time.Time) {
	ingesterFoldedEventsTotal.WithLabelValues(m.protocol, "applied").Add(float64(stats.Applied))
	ingesterFoldedEventsTotal.WithLabelValues(m.protocol, "ignored").Add(float64(stats.Ignored))
	ingesterFoldedEventsTotal.WithLabelValues(m.protocol, "skipped").Add(float64(stats.Skipped))
	ingesterFoldDuration.WithLabelValues(m.protocol).Observe(time.Since(started).Seconds())
}

// ObservePersist records one snapshot persist.
func (m LoanStateIngester) ObservePersist(err error, rows int, started time.Time) {
	status := statusOf(err)
	ingesterPersistTotal.WithLabelValues(m.protocol, status).Inc()
	ingesterPersistDuration.WithLabelValues(m.protocol, status).Observe(time.Since(started).Seconds())
	if err == nil {
		ingesterPersistRows.WithLabelValues(m.protocol).Observe(float64(rows))
	}
}

// ObserveEmptyPage records a page that returned no events.
func (m LoanStateIngester) ObserveEmptyPage() {
	ingesterEmptyPagesTotal.WithLabelValues(m.protocol).Inc()
}

// SetCheckpoint exports the current checkpoint.
func (m LoanStateIngester) SetCheckpoint(block uint64) {
	ingesterCheckpoint.WithLabelValues(m.protocol).Set(float64(block))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
