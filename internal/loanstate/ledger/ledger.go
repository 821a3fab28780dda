// Package ledger holds the mutable loan state of a protocol: per-account
// positions and per-asset interest-rate-model parameters.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of decimal places kept when scaling by an index.
const divisionPrecision = 18

var (
	// ErrNegativeAmount is returned when a fold receives a negative delta.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInvalidIndex is returned when an interest-rate-model update carries a non-positive index.
	ErrInvalidIndex = errors.New("invalid interest rate index")
)

// CollateralKind distinguishes plain collateral from interest-bearing collateral.
type CollateralKind uint8

const (
	// CollateralPlain does not accrue interest.
	CollateralPlain CollateralKind = iota
	// CollateralInterestBearing accrues the asset's lending index.
	CollateralInterestBearing
)

func (k CollateralKind) String() string {
	switch k {
	case CollateralPlain:
		return "plain"
	case CollateralInterestBearing:
		return "interest_bearing"
	default:
		return fmt.Sprintf("collateral_kind(%d)", k)
	}
}

type position struct {
	plainCollateral       decimal.Decimal
	interestBearing       decimal.Decimal
	scaledInterestBearing decimal.Decimal
	debt                  decimal.Decimal
	scaledDebt            decimal.Decimal
	collateralEnabled     bool
}

// AccountState is the set of positions of one account, keyed by asset.
type AccountState struct {
	Account   model.Address
	positions map[model.Asset]*position
}

func (a *AccountState) position(asset model.Asset) *position {
	p, ok := a.positions[asset]
	if !ok {
		p = &position{}
		a.positions[asset] = p
	}
	return p
}

// Ledger folds decoded events into account and interest-rate-model state.
// It performs no reordering; callers must fold in order. A Ledger is not safe
// for concurrent use.
type Ledger struct {
	accounts map[model.Address]*AccountState
	rates    map[model.Asset]model.InterestRateModelState
	pending  []model.InterestRateUpdate
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		accounts: make(map[model.Address]*AccountState),
		rates:    make(map[model.Asset]model.InterestRateModelState),
	}
}

func (l *Ledger) account(addr model.Address) *AccountState {
	a, ok := l.accounts[addr]
	if !ok {
		a = &AccountState{Account: addr, positions: make(map[model.Asset]*position)}
		l.accounts[addr] = a
	}
	return a
}

// Accounts returns the number of accounts seen so far.
func (l *Ledger) Accounts() int {
	return len(l.accounts)
}

// InterestRateModel returns the current parameters for asset. Assets without
// an update report unit indices and ok == false.
func (l *Ledger) InterestRateModel(asset model.Asset) (model.InterestRateModelState, bool) {
	state, ok := l.rates[asset]
	if !ok {
		return model.InterestRateModelState{
			Asset:        asset,
			LendingRate:  decimal.Zero,
			BorrowRate:   decimal.Zero,
			LendingIndex: decimal.NewFromInt(1),
			BorrowIndex:  decimal.NewFromInt(1),
		}, false
	}
	return state, true
}

// UpdateInterestRateModel stores new rate parameters for the update's asset and
// records the update in the pending history.
func (l *Ledger) UpdateInterestRateModel(u model.InterestRateUpdate) error {
	if !u.LendingIndex.IsPositive() || !u.BorrowIndex.IsPositive() {
		return fmt.Errorf("asset %s at block %d: %w", u.Asset, u.Block, ErrInvalidIndex)
	}
	l.rates[u.Asset] = model.InterestRateModelState{
		Asset:        u.Asset,
		Block:        u.Block,
		LendingRate:  u.LendingRate,
		BorrowRate:   u.BorrowRate,
		LendingIndex: u.LendingIndex,
		BorrowIndex:  u.BorrowIndex,
	}
	l.pending = append(l.pending, u)
	return nil
}

// PendingInterestRates returns a copy of the rate updates not yet persisted.
func (l *Ledger) PendingInterestRates() []model.InterestRateUpdate {
	out := make([]model.InterestRateUpdate, len(l.pending))
	copy(out, l.pending)
	return out
}

// ClearPendingInterestRates drops the pending history once it has been persisted.
func (l *Ledger) ClearPendingInterestRates() {
	l.pending = l.pending[:0]
}

// Deposit adds collateral to an account.
func (l *Ledger) Deposit(account model.Address, asset model.Asset, kind CollateralKind, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	l.addCollateral(account, asset, kind, amount)
	return nil
}

// Withdraw removes collateral from an account.
func (l *Ledger) Withdraw(account model.Address, asset model.Asset, kind CollateralKind, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	l.addCollateral(account, asset, kind, amount.Neg())
	return nil
}

// Borrow adds debt to an account.
func (l *Ledger) Borrow(account model.Address, asset model.Asset, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	l.addDebt(account, asset, amount)
	return nil
}

// Repay removes debt from an account.
func (l *Ledger) Repay(account model.Address, asset model.Asset, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	l.addDebt(account, asset, amount.Neg())
	return nil
}

// EnableCollateral marks the asset as usable collateral for the account.
func (l *Ledger) EnableCollateral(account model.Address, asset model.Asset) {
	l.account(account).position(asset).collateralEnabled = true
}

// DisableCollateral clears the collateral flag for the account's asset.
func (l *Ledger) DisableCollateral(account model.Address, asset model.Asset) {
	l.account(account).position(asset).collateralEnabled = false
}

// TransferCollateral moves collateral between two accounts.
func (l *Ledger) TransferCollateral(from, to model.Address, asset model.Asset, kind CollateralKind, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	l.addCollateral(from, asset, kind, amount.Neg())
	l.addCollateral(to, asset, kind, amount)
	return nil
}

// TransferDebt moves debt between two accounts.
func (l *Ledger) TransferDebt(from, to model.Address, asset model.Asset, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	l.addDebt(from, asset, amount.Neg())
	l.addDebt(to, asset, amount)
	return nil
}

// Liquidation describes a liquidation of Account by Liquidator.
type Liquidation struct {
	Account          model.Address
	Liquidator       model.Address
	DebtAsset        model.Asset
	DebtAmount       decimal.Decimal
	CollateralAsset  model.Asset
	CollateralKind   CollateralKind
	CollateralAmount decimal.Decimal
}

// Liquidate repays debt of the liquidated account and moves the seized
// collateral to the liquidator.
func (l *Ledger) Liquidate(liq Liquidation) error {
	if liq.DebtAmount.IsNegative() || liq.CollateralAmount.IsNegative() {
		return ErrNegativeAmount
	}
	l.addDebt(liq.Account, liq.DebtAsset, liq.DebtAmount.Neg())
	l.addCollateral(liq.Account, liq.CollateralAsset, liq.CollateralKind, liq.CollateralAmount.Neg())
	l.addCollateral(liq.Liquidator, liq.CollateralAsset, liq.CollateralKind, liq.CollateralAmount)
	return nil
}

func (l *Ledger) addCollateral(account model.Address, asset model.Asset, kind CollateralKind, delta decimal.Decimal) {
	p := l.account(account).position(asset)
	if kind == CollateralPlain {
		p.plainCollateral = p.plainCollateral.Add(delta)
		return
	}
	rate, _ := l.InterestRateModel(asset)
	p.interestBearing = p.interestBearing.Add(delta)
	p.scaledInterestBearing = p.scaledInterestBearing.Add(delta.DivRound(rate.LendingIndex, divisionPrecision))
}

func (l *Ledger) addDebt(account model.Address, asset model.Asset, delta decimal.Decimal) {
	p := l.account(account).position(asset)
	rate, _ := l.InterestRateModel(asset)
	p.debt = p.debt.Add(delta)
	p.scaledDebt = p.scaledDebt.Add(delta.DivRound(rate.BorrowIndex, divisionPrecision))
}

// Snapshot exports every account-asset position as a row, sorted by account
// and asset. Effective balances apply the current indices to the scaled amounts.
func (l *Ledger) Snapshot(protocol model.Protocol, block uint64) []model.LoanState {
	rows := make([]model.LoanState, 0, len(l.accounts))
	for addr, acc := range l.accounts {
		for asset, p := range acc.positions {
			rate, _ := l.InterestRateModel(asset)
			rows = append(rows, model.LoanState{
				Protocol:            protocol,
				Block:               block,
				Account:             addr,
				Asset:               asset,
				Collateral:          p.plainCollateral.Add(p.interestBearing),
				ScaledCollateral:    p.scaledInterestBearing,
				EffectiveCollateral: p.plainCollateral.Add(p.scaledInterestBearing.Mul(rate.LendingIndex)),
				Debt:                p.debt,
				ScaledDebt:          p.scaledDebt,
				EffectiveDebt:       p.scaledDebt.Mul(rate.BorrowIndex),
				CollateralEnabled:   p.collateralEnabled,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Account != rows[j].Account {
			return rows[i].Account < rows[j].Account
		}
		return rows[i].Asset < rows[j].Asset
	})
	return rows
}
