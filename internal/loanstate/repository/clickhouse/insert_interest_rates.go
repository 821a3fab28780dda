package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

const insertInterestRatesQuery = `
INSERT INTO interest_rates (
	protocol,
	block,
	timestamp,
	asset,
	lending_rate,
	borrow_rate,
	lending_index,
	borrow_index
) VALUES`

// InsertInterestRates appends interest-rate-model updates to the history table.
func (r *Repository) InsertInterestRates(ctx context.Context, updates []model.InterestRateUpdate) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_interest_rates", firstProtocol(updates), err, start)
	}()

	if len(updates) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertInterestRatesQuery)
	if err != nil {
		return fmt.Errorf("prepare interest rates batch: %w", err)
	}

	for _, u := range updates {
		if err = batch.Append(
			string(u.Protocol),
			u.Block,
			u.Timestamp,
			string(u.Asset),
			u.LendingRate,
			u.BorrowRate,
			u.LendingIndex,
			u.BorrowIndex,
		); err != nil {
			return fmt.Errorf("append interest rate %s at %d: %w", u.Asset, u.Block, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert interest rates: %w", err)
	}
	return nil
}
