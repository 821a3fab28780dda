package model

import "github.com/shopspring/decimal"

// LoanState is one exported row of the ledger: the position of an account in a single asset.
type LoanState struct {
	Protocol Protocol
	// Block is the checkpoint the snapshot was taken at.
	Block   uint64
	Account Address
	Asset   Asset

	Collateral          decimal.Decimal
	ScaledCollateral    decimal.Decimal
	EffectiveCollateral decimal.Decimal
	Debt                decimal.Decimal
	ScaledDebt          decimal.Decimal
	EffectiveDebt       decimal.Decimal
	CollateralEnabled   bool
}
