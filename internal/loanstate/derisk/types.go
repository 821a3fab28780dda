package derisk

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/chain"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

type (
	// Metrics records metrics for event API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		Dropped(reason string)
	}

	// EventFetcher fetches raw events emitted by one contract.
	EventFetcher interface {
		Events(ctx context.Context, address model.Address, r chain.BlockRange) ([]Event, error)
	}
)
