package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/Tzienom/derisk-research/pkg/safe"
)

const maxLoanStateBlockQuery = `SELECT coalesce(max(block), 0) FROM loan_states WHERE protocol = $1`

// MaxLoanStateBlock returns the highest snapshot block stored for protocol, or 0.
func (r *Repository) MaxLoanStateBlock(ctx context.Context, protocol model.Protocol) (block uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_loan_state_block", protocol, err, start)
	}()

	var raw int64
	if err = r.db.QueryRow(ctx, maxLoanStateBlockQuery, string(protocol)).Scan(&raw); err != nil {
		return 0, fmt.Errorf("query max loan state block: %w", err)
	}
	block, err = safe.Uint64(raw)
	if err != nil {
		return 0, fmt.Errorf("max loan state block: %w", err)
	}
	return block, nil
}
