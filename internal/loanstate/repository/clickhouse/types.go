package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, protocol model.Protocol, err error, started time.Time)
	}

	// Conn is the subset of the ClickHouse connection the repository uses.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		Close() error
	}

	// Batch is a prepared insert batch.
	Batch interface {
		Append(v ...any) error
		Send() error
	}

	// Rows is a query result cursor.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
)
