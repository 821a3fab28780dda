package nostra

import (
	"errors"
	"fmt"

	"github.com/Tzienom/derisk-research/internal/loanstate/ledger"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"github.com/Tzienom/derisk-research/pkg/safe"
	"github.com/shopspring/decimal"
)

// rateDecimals is the fixed-point precision of rates and indices on the wire.
const rateDecimals = 18

// ErrMalformedPayload reports an event whose keys or data do not match its layout.
var ErrMalformedPayload = errors.New("malformed event payload")

func malformed(rec model.EventRecord, format string, args ...any) error {
	return fmt.Errorf("%w: %s at block %d id %d: %s", ErrMalformedPayload, rec.EventName, rec.BlockNumber, rec.IntraBlockID, fmt.Sprintf(format, args...))
}

func amount(rec model.EventRecord, low, high string) (decimal.Decimal, error) {
	v, err := safe.U256(low, high)
	if err != nil {
		return decimal.Decimal{}, malformed(rec, "%v", err)
	}
	return decimal.NewFromBigInt(v, 0), nil
}

func fixedPoint(rec model.EventRecord, low, high string) (decimal.Decimal, error) {
	v, err := safe.U256(low, high)
	if err != nil {
		return decimal.Decimal{}, malformed(rec, "%v", err)
	}
	return decimal.NewFromBigInt(v, -rateDecimals), nil
}

// accountAmount decodes Mint/Burn: data = [account, amount.low, amount.high].
func accountAmount(rec model.EventRecord) (model.Address, decimal.Decimal, error) {
	if len(rec.Data) < 3 {
		return "", decimal.Decimal{}, malformed(rec, "want 3 data felts, got %d", len(rec.Data))
	}
	value, err := amount(rec, rec.Data[1], rec.Data[2])
	if err != nil {
		return "", decimal.Decimal{}, err
	}
	return model.NormalizeAddress(rec.Data[0]), value, nil
}

// transfer decodes Transfer in either layout:
// data = [from, to, value.low, value.high] or
// keys = [selector, from, to], data = [value.low, value.high].
func transfer(rec model.EventRecord) (model.Address, model.Address, decimal.Decimal, error) {
	switch {
	case len(rec.Data) >= 4:
		value, err := amount(rec, rec.Data[2], rec.Data[3])
		if err != nil {
			return "", "", decimal.Decimal{}, err
		}
		return model.NormalizeAddress(rec.Data[0]), model.NormalizeAddress(rec.Data[1]), value, nil
	case len(rec.Keys) >= 3 && len(rec.Data) >= 2:
		value, err := amount(rec, rec.Data[0], rec.Data[1])
		if err != nil {
			return "", "", decimal.Decimal{}, err
		}
		return model.NormalizeAddress(rec.Keys[1]), model.NormalizeAddress(rec.Keys[2]), value, nil
	default:
		return "", "", decimal.Decimal{}, malformed(rec, "transfer with %d keys and %d data felts", len(rec.Keys), len(rec.Data))
	}
}

// interestRateUpdate decodes InterestStateUpdated:
// data = [debt_token, lending_rate(u256), borrow_rate(u256), lending_index(u256), borrow_index(u256)].
func interestRateUpdate(rec model.EventRecord, registry *Registry) (model.InterestRateUpdate, error) {
	if len(rec.Data) < 9 {
		return model.InterestRateUpdate{}, malformed(rec, "want 9 data felts, got %d", len(rec.Data))
	}
	token := model.NormalizeAddress(rec.Data[0])
	market, ok := registry.Market(token)
	if !ok || market.Asset == "" {
		return model.InterestRateUpdate{}, malformed(rec, "untracked token %s", token)
	}

	values := make([]decimal.Decimal, 0, 4)
	for i := 1; i < 9; i += 2 {
		v, err := fixedPoint(rec, rec.Data[i], rec.Data[i+1])
		if err != nil {
			return model.InterestRateUpdate{}, err
		}
		values = append(values, v)
	}

	return model.InterestRateUpdate{
		Protocol:     registry.Protocol(),
		Block:        rec.BlockNumber,
		Timestamp:    rec.Timestamp,
		Asset:        market.Asset,
		LendingRate:  values[0],
		BorrowRate:   values[1],
		LendingIndex: values[2],
		BorrowIndex:  values[3],
	}, nil
}

// collateralToggle decodes CollateralEnabled/Disabled: data = [account, token].
func collateralToggle(rec model.EventRecord, registry *Registry) (model.Address, model.Asset, error) {
	if len(rec.Data) < 2 {
		return "", "", malformed(rec, "want 2 data felts, got %d", len(rec.Data))
	}
	token := model.NormalizeAddress(rec.Data[1])
	market, ok := registry.Market(token)
	if !ok || market.Asset == "" {
		return "", "", malformed(rec, "untracked token %s", token)
	}
	return model.NormalizeAddress(rec.Data[0]), market.Asset, nil
}

// liquidation decodes Liquidation:
// data = [account, liquidator, debt_token, debt(u256), collateral_token, collateral(u256)].
func liquidation(rec model.EventRecord, registry *Registry) (ledger.Liquidation, error) {
	if len(rec.Data) < 8 {
		return ledger.Liquidation{}, malformed(rec, "want 8 data felts, got %d", len(rec.Data))
	}
	debtToken := model.NormalizeAddress(rec.Data[2])
	debtMarket, ok := registry.Market(debtToken)
	if !ok || debtMarket.Category != CategoryDebt {
		return ledger.Liquidation{}, malformed(rec, "%s is not a debt token", debtToken)
	}
	collateralToken := model.NormalizeAddress(rec.Data[5])
	collateralMarket, ok := registry.Market(collateralToken)
	if !ok {
		return ledger.Liquidation{}, malformed(rec, "untracked collateral token %s", collateralToken)
	}
	kind, ok := collateralKind(collateralMarket.Category)
	if !ok {
		return ledger.Liquidation{}, malformed(rec, "%s is not a collateral token", collateralToken)
	}

	debt, err := amount(rec, rec.Data[3], rec.Data[4])
	if err != nil {
		return ledger.Liquidation{}, err
	}
	collateral, err := amount(rec, rec.Data[6], rec.Data[7])
	if err != nil {
		return ledger.Liquidation{}, err
	}

	return ledger.Liquidation{
		Account:          model.NormalizeAddress(rec.Data[0]),
		Liquidator:       model.NormalizeAddress(rec.Data[1]),
		DebtAsset:        debtMarket.Asset,
		DebtAmount:       debt,
		CollateralAsset:  collateralMarket.Asset,
		CollateralKind:   kind,
		CollateralAmount: collateral,
	}, nil
}

func collateralKind(c Category) (ledger.CollateralKind, bool) {
	switch c {
	case CategoryCollateral:
		return ledger.CollateralPlain, true
	case CategoryInterestBearingCollateral:
		return ledger.CollateralInterestBearing, true
	default:
		return 0, false
	}
}
