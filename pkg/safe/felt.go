package safe

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	// feltPrime is the StarkNet field modulus 2^251 + 17*2^192 + 1.
	feltPrime = func() *big.Int {
		p := new(big.Int).Lsh(big.NewInt(1), 251)
		p.Add(p, new(big.Int).Lsh(big.NewInt(17), 192))
		return p.Add(p, big.NewInt(1))
	}()
	u128Limit = new(big.Int).Lsh(big.NewInt(1), 128)
)

// Felt parses a hex field element, rejecting values outside the StarkNet field.
func Felt(raw string) (*big.Int, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "0x")
	if s == "" {
		return nil, fmt.Errorf("empty felt %q", raw)
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("felt %q is not hex", raw)
	}
	if v.Cmp(feltPrime) >= 0 {
		return nil, fmt.Errorf("felt %q out of field range", raw)
	}
	return v, nil
}

// U256 joins the low and high 128-bit felts of a Cairo u256.
func U256(low, high string) (*big.Int, error) {
	lo, err := Felt(low)
	if err != nil {
		return nil, fmt.Errorf("u256 low: %w", err)
	}
	hi, err := Felt(high)
	if err != nil {
		return nil, fmt.Errorf("u256 high: %w", err)
	}
	if lo.Cmp(u128Limit) >= 0 {
		return nil, fmt.Errorf("u256 low %q exceeds 128 bits", low)
	}
	if hi.Cmp(u128Limit) >= 0 {
		return nil, fmt.Errorf("u256 high %q exceeds 128 bits", high)
	}
	return hi.Lsh(hi, 128).Or(hi, lo), nil
}
