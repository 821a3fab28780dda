package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

const insertLoanStatesQuery = `
INSERT INTO loan_states (
	protocol,
	block,
	account,
	asset,
	collateral,
	scaled_collateral,
	effective_collateral,
	debt,
	scaled_debt,
	effective_debt,
	collateral_enabled
) VALUES`

// InsertLoanStates upserts snapshot rows. Rows for the same (protocol, account, asset)
// collapse to the highest block.
func (r *Repository) InsertLoanStates(ctx context.Context, states []model.LoanState) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_loan_states", firstProtocol(states), err, start)
	}()

	if len(states) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertLoanStatesQuery)
	if err != nil {
		return fmt.Errorf("prepare loan states batch: %w", err)
	}

	for _, s := range states {
		if err = batch.Append(
			string(s.Protocol),
			s.Block,
			string(s.Account),
			string(s.Asset),
			s.Collateral,
			s.ScaledCollateral,
			s.EffectiveCollateral,
			s.Debt,
			s.ScaledDebt,
			s.EffectiveDebt,
			s.CollateralEnabled,
		); err != nil {
			return fmt.Errorf("append loan state %s/%s: %w", s.Account, s.Asset, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert loan states: %w", err)
	}
	return nil
}

func firstProtocol[T any](items []T) model.Protocol {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.LoanState:
		return v.Protocol
	case model.InterestRateUpdate:
		return v.Protocol
	default:
		return ""
	}
}
