package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InterestRateModelState holds the latest rate parameters known for an asset.
type InterestRateModelState struct {
	Asset        Asset
	Block        uint64
	LendingRate  decimal.Decimal
	BorrowRate   decimal.Decimal
	LendingIndex decimal.Decimal
	BorrowIndex  decimal.Decimal
}

// InterestRateUpdate is a single interest-rate-model event as persisted to history.
type InterestRateUpdate struct {
	Protocol     Protocol
	Block        uint64
	Timestamp    time.Time
	Asset        Asset
	LendingRate  decimal.Decimal
	BorrowRate   decimal.Decimal
	LendingIndex decimal.Decimal
	BorrowIndex  decimal.Decimal
}
