package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

const maxLoanStateBlockQuery = `
SELECT coalesce(max(block), toUInt64(0)) AS max_block
FROM loan_states
WHERE protocol = ?`

// MaxLoanStateBlock returns the highest snapshot block stored for protocol, or 0.
func (r *Repository) MaxLoanStateBlock(ctx context.Context, protocol model.Protocol) (block uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_loan_state_block", protocol, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxLoanStateBlockQuery, string(protocol))
	if err != nil {
		return 0, fmt.Errorf("query max loan state block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("max loan state block not found")
	}
	if err = rows.Scan(&block); err != nil {
		return 0, fmt.Errorf("scan max loan state block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max loan state block: %w", err)
	}

	return block, nil
}
