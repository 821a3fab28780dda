package nostra

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

const (
	testIRM        = "0x1"
	testETHPlain   = "0x10"
	testETHBearing = "0x11"
	testETHDebt    = "0x12"
	testUSDCDebt   = "0x13"
	testMarket     = "0x20"
	testAlice      = "0xa11ce"
	testBob        = "0xb0b"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(model.NostraAlpha, testIRM, []Market{
		{Address: testETHPlain, Asset: "ETH", Category: CategoryCollateral},
		{Address: testETHBearing, Asset: "ETH", Category: CategoryInterestBearingCollateral},
		{Address: testETHDebt, Asset: "ETH", Category: CategoryDebt},
		{Address: testUSDCDebt, Asset: "USDC", Category: CategoryDebt},
		{Address: testMarket, Category: CategoryMarket},
	})
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	return r
}

func felt(v int64) string {
	return fmt.Sprintf("0x%x", v)
}

// wad renders a value scaled by 1e18 given in hundredths, e.g. wad(5) is 0.05.
func wad(hundredths int64) string {
	v := new(big.Int).Mul(big.NewInt(hundredths), new(big.Int).Exp(big.NewInt(10), big.NewInt(16), nil))
	return "0x" + v.Text(16)
}

func event(contract, name string, block, id uint64, data ...string) model.EventRecord {
	return model.EventRecord{
		ContractAddress: model.NormalizeAddress(contract),
		EventName:       name,
		BlockNumber:     block,
		IntraBlockID:    id,
		Data:            data,
	}
}

func rateEvent(block, id uint64, token string, lendRate, borrowRate, lendIndex, borrowIndex int64) model.EventRecord {
	return event(testIRM, "InterestStateUpdated", block, id,
		token,
		wad(lendRate), "0x0",
		wad(borrowRate), "0x0",
		wad(lendIndex), "0x0",
		wad(borrowIndex), "0x0",
	)
}
