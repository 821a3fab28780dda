package ingester

import (
	"context"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/chain"
	"github.com/Tzienom/derisk-research/internal/loanstate/ledger"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	EventSource interface {
		Events(ctx context.Context, addresses []model.Address, r chain.BlockRange) ([]model.EventRecord, error)
	}
	Repository interface {
		InsertLoanStates(ctx context.Context, states []model.LoanState) error
		InsertInterestRates(ctx context.Context, updates []model.InterestRateUpdate) error
	}
	Folder interface {
		Fold(l *ledger.Ledger, records []model.EventRecord) chain.FoldStats
	}
	LoanStateIngesterMetrics interface {
		ObserveFetch(err error, events int, started time.Time)
		ObserveFold(stats chain.FoldStats, started time.Time)
		ObservePersist(err error, rows int, started time.Time)
		ObserveEmptyPage()
		SetCheckpoint(block uint64)
	}
)
