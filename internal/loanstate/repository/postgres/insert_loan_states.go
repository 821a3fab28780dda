package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/Tzienom/derisk-research/pkg/safe"
)

const insertLoanStatesQuery = `
INSERT INTO loan_states (
	protocol, block, account, asset,
	collateral, scaled_collateral, effective_collateral,
	debt, scaled_debt, effective_debt,
	collateral_enabled, updated_at
)
SELECT
	t.protocol, t.block, t.account, t.asset,
	t.collateral::numeric, t.scaled_collateral::numeric, t.effective_collateral::numeric,
	t.debt::numeric, t.scaled_debt::numeric, t.effective_debt::numeric,
	t.collateral_enabled, now()
FROM unnest(
	$1::text[], $2::bigint[], $3::text[], $4::text[],
	$5::text[], $6::text[], $7::text[],
	$8::text[], $9::text[], $10::text[],
	$11::boolean[]
) AS t(
	protocol, block, account, asset,
	collateral, scaled_collateral, effective_collateral,
	debt, scaled_debt, effective_debt,
	collateral_enabled
)
ON CONFLICT (protocol, account, asset) DO UPDATE SET
	block = EXCLUDED.block,
	collateral = EXCLUDED.collateral,
	scaled_collateral = EXCLUDED.scaled_collateral,
	effective_collateral = EXCLUDED.effective_collateral,
	debt = EXCLUDED.debt,
	scaled_debt = EXCLUDED.scaled_debt,
	effective_debt = EXCLUDED.effective_debt,
	collateral_enabled = EXCLUDED.collateral_enabled,
	updated_at = EXCLUDED.updated_at
WHERE loan_states.block <= EXCLUDED.block`

type loanStateColumns struct {
	protocols           []string
	blocks              []int64
	accounts            []string
	assets              []string
	collateral          []string
	scaledCollateral    []string
	effectiveCollateral []string
	debt                []string
	scaledDebt          []string
	effectiveDebt       []string
	collateralEnabled   []bool
}

func (c loanStateColumns) args() []any {
	return []any{
		c.protocols, c.blocks, c.accounts, c.assets,
		c.collateral, c.scaledCollateral, c.effectiveCollateral,
		c.debt, c.scaledDebt, c.effectiveDebt,
		c.collateralEnabled,
	}
}

func toLoanStateColumns(states []model.LoanState) (loanStateColumns, error) {
	var c loanStateColumns
	for _, s := range states {
		block, err := safe.Int64(s.Block)
		if err != nil {
			return loanStateColumns{}, fmt.Errorf("loan state %s/%s block: %w", s.Account, s.Asset, err)
		}
		c.protocols = append(c.protocols, string(s.Protocol))
		c.blocks = append(c.blocks, block)
		c.accounts = append(c.accounts, string(s.Account))
		c.assets = append(c.assets, string(s.Asset))
		c.collateral = append(c.collateral, s.Collateral.String())
		c.scaledCollateral = append(c.scaledCollateral, s.ScaledCollateral.String())
		c.effectiveCollateral = append(c.effectiveCollateral, s.EffectiveCollateral.String())
		c.debt = append(c.debt, s.Debt.String())
		c.scaledDebt = append(c.scaledDebt, s.ScaledDebt.String())
		c.effectiveDebt = append(c.effectiveDebt, s.EffectiveDebt.String())
		c.collateralEnabled = append(c.collateralEnabled, s.CollateralEnabled)
	}
	return c, nil
}

// InsertLoanStates upserts snapshot rows in a single statement. A stored row is
// only replaced by a row of the same or a later block.
func (r *Repository) InsertLoanStates(ctx context.Context, states []model.LoanState) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_loan_states", firstProtocol(states), err, start)
	}()

	if len(states) == 0 {
		return nil
	}

	cols, err := toLoanStateColumns(states)
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, insertLoanStatesQuery, cols.args()...); err != nil {
		return fmt.Errorf("upsert loan states: %w", err)
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
