package derisk

import (
	"context"

	"github.com/Tzienom/derisk-research/internal/loanstate/chain"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/Tzienom/derisk-research/pkg/workerpool"
	"go.uber.org/zap"
)

// Source adapts the event API to the ingester: it fans out one request per
// address and returns normalized records inside the requested range.
type Source struct {
	fetcher EventFetcher
	workers int
	metrics Metrics
	logger  *zap.Logger
}

// NewSource builds a Source fetching up to workers addresses concurrently.
func NewSource(fetcher EventFetcher, workers int, metrics Metrics, logger *zap.Logger) *Source {
	if workers < 1 {
		workers = 1
	}
	return &Source{
		fetcher: fetcher,
		workers: workers,
		metrics: metrics,
		logger:  logger,
	}
}

// Events returns the union of events of all addresses in r, in address order.
// Any request failure fails the whole call.
func (s *Source) Events(ctx context.Context, addresses []model.Address, r chain.BlockRange) ([]model.EventRecord, error) {
	pages, err := workerpool.Map(ctx, s.workers, addresses, func(ctx context.Context, addr model.Address) ([]Event, error) {
		return s.fetcher.Events(ctx, addr, r)
	})
	if err != nil {
		return nil, err
	}

	records := make([]model.EventRecord, 0)
	for i, page := range pages {
		for _, e := range page {
			rec, err := ToEventRecord(e)
			if err != nil {
				s.metrics.Dropped("convert")
				s.logger.Warn("dropping unconvertible event",
					zap.String("address", addresses[i].String()),
					zap.Uint64("id", uint64(e.ID)),
					zap.Error(err),
				)
				continue
			}
			if !r.Contains(rec.BlockNumber) {
				s.metrics.Dropped("out_of_range")
				s.logger.Debug("dropping event outside range",
					zap.String("range", r.String()),
					zap.Uint64("block", rec.BlockNumber),
				)
				continue
			}
			records = append(records, rec)
		}
	}
	return records, nil
}
