package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/Tzienom/derisk-research/pkg/safe"
)

const insertInterestRatesQuery = `
INSERT INTO interest_rates (
	protocol, block, timestamp, asset,
	lending_rate, borrow_rate, lending_index, borrow_index,
	updated_at
)
SELECT
	t.protocol, t.block, t.timestamp, t.asset,
	t.lending_rate::numeric, t.borrow_rate::numeric, t.lending_index::numeric, t.borrow_index::numeric,
	now()
FROM unnest(
	$1::text[], $2::bigint[], $3::timestamptz[], $4::text[],
	$5::text[], $6::text[], $7::text[], $8::text[]
) AS t(
	protocol, block, timestamp, asset,
	lending_rate, borrow_rate, lending_index, borrow_index
)
ON CONFLICT (protocol, asset, block) DO UPDATE SET
	timestamp = EXCLUDED.timestamp,
	lending_rate = EXCLUDED.lending_rate,
	borrow_rate = EXCLUDED.borrow_rate,
	lending_index = EXCLUDED.lending_index,
	borrow_index = EXCLUDED.borrow_index,
	updated_at = EXCLUDED.updated_at`

// InsertInterestRates upserts interest-rate-model history. Several updates of one
// asset inside a block keep the last one.
func (r *Repository) InsertInterestRates(ctx context.Context, updates []model.InterestRateUpdate) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_interest_rates", firstProtocol(updates), err, start)
	}()

	updates = lastPerBlock(updates)
	if len(updates) == 0 {
		return nil
	}

	var (
		protocols, assets                          []string
		blocks                                     []int64
		timestamps                                 []time.Time
		lendRates, borrowRates, lendIdx, borrowIdx []string
	)
	for _, u := range updates {
		block, convErr := safe.Int64(u.Block)
		if convErr != nil {
			err = fmt.Errorf("interest rate %s block: %w", u.Asset, convErr)
			return err
		}
		protocols = append(protocols, string(u.Protocol))
		blocks = append(blocks, block)
		timestamps = append(timestamps, u.Timestamp)
		assets = append(assets, string(u.Asset))
		lendRates = append(lendRates, u.LendingRate.String())
		borrowRates = append(borrowRates, u.BorrowRate.String())
		lendIdx = append(lendIdx, u.LendingIndex.String())
		borrowIdx = append(borrowIdx, u.BorrowIndex.String())
	}

	if _, err = r.db.Exec(ctx, insertInterestRatesQuery,
		protocols, blocks, timestamps, assets,
		lendRates, borrowRates, lendIdx, borrowIdx,
	); err != nil {
		return fmt.Errorf("upsert interest rates: %w", err)
	}
	return nil
}

// lastPerBlock keeps the last update per (protocol, asset, block) in input order;
// one statement cannot upsert the same key twice.
func lastPerBlock(updates []model.InterestRateUpdate) []model.InterestRateUpdate {
	type key struct {
		protocol model.Protocol
		asset    model.Asset
		block    uint64
	}
	index := make(map[key]int, len(updates))
	out := make([]model.InterestRateUpdate, 0, len(updates))
	for _, u := range updates {
		k := key{protocol: u.Protocol, asset: u.Asset, block: u.Block}
		if i, ok := index[k]; ok {
			out[i] = u
			continue
		}
		index[k] = len(out)
		out = append(out, u)
	}
	return out
}
