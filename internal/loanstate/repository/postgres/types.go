package postgres

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, protocol model.Protocol, err error, started time.Time)
	}

	// DB is the subset of a pgx pool the repository uses.
	DB interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Close()
	}

	// Row mirrors pgx.Row so tests can mock the result of DB.QueryRow.
	Row interface {
		Scan(dest ...any) error
	}
)
