// Package nostra routes and decodes Nostra Alpha contract events into ledger folds.
package nostra

import (
	"errors"
	"fmt"
	"os"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"gopkg.in/yaml.v3"
)

// Category groups market contracts whose identically named events mean different things.
type Category string

var (
	// CategoryCollateral is a non-interest-bearing collateral token.
	CategoryCollateral Category = "collateral"
	// CategoryInterestBearingCollateral is a collateral token accruing the lending index.
	CategoryInterestBearingCollateral Category = "interest_bearing_collateral"
	// CategoryDebt is a debt token accruing the borrow index.
	CategoryDebt Category = "debt"
	// CategoryMarket is the market manager emitting collateral toggles and liquidations.
	CategoryMarket Category = "market"
)

func (c Category) valid() bool {
	switch c {
	case CategoryCollateral, CategoryInterestBearingCollateral, CategoryDebt, CategoryMarket:
		return true
	default:
		return false
	}
}

// Market is a tracked protocol contract.
type Market struct {
	Address  model.Address
	Asset    model.Asset
	Category Category
}

// Registry is the static table of tracked contracts for one protocol deployment.
type Registry struct {
	protocol          model.Protocol
	interestRateModel model.Address
	markets           map[model.Address]Market
	addresses         []model.Address
}

// NewRegistry validates the market list and builds a Registry.
func NewRegistry(protocol model.Protocol, interestRateModel string, markets []Market) (*Registry, error) {
	if protocol == "" {
		return nil, errors.New("protocol is required")
	}
	if interestRateModel == "" {
		return nil, errors.New("interest rate model address is required")
	}

	r := &Registry{
		protocol:          protocol,
		interestRateModel: model.NormalizeAddress(interestRateModel),
		markets:           make(map[model.Address]Market, len(markets)),
		addresses:         make([]model.Address, 0, len(markets)),
	}
	for _, m := range markets {
		m.Address = model.NormalizeAddress(string(m.Address))
		if !m.Category.valid() {
			return nil, fmt.Errorf("market %s: unknown category %q", m.Address, m.Category)
		}
		if m.Asset == "" && m.Category != CategoryMarket {
			return nil, fmt.Errorf("market %s: asset is required for category %s", m.Address, m.Category)
		}
		if m.Address == r.interestRateModel {
			return nil, fmt.Errorf("market %s: collides with interest rate model address", m.Address)
		}
		if _, dup := r.markets[m.Address]; dup {
			return nil, fmt.Errorf("market %s: duplicate address", m.Address)
		}
		r.markets[m.Address] = m
		r.addresses = append(r.addresses, m.Address)
	}
	return r, nil
}

type registryFile struct {
	Protocol          string `yaml:"protocol"`
	InterestRateModel string `yaml:"interest_rate_model"`
	Markets           []struct {
		Address  string `yaml:"address"`
		Asset    string `yaml:"asset"`
		Category string `yaml:"category"`
	} `yaml:"markets"`
}

// LoadRegistry reads a registry definition from a YAML file.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", path, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", path, err)
	}

	markets := make([]Market, 0, len(file.Markets))
	for _, m := range file.Markets {
		markets = append(markets, Market{
			Address:  model.Address(m.Address),
			Asset:    model.Asset(m.Asset),
			Category: Category(m.Category),
		})
	}
	return NewRegistry(model.Protocol(file.Protocol), file.InterestRateModel, markets)
}

// Protocol returns the protocol the registry describes.
func (r *Registry) Protocol() model.Protocol {
	return r.protocol
}

// InterestRateModel returns the interest-rate-model contract address.
func (r *Registry) InterestRateModel() model.Address {
	return r.interestRateModel
}

// Addresses returns the tracked market addresses in declaration order.
func (r *Registry) Addresses() []model.Address {
	out := make([]model.Address, len(r.addresses))
	copy(out, r.addresses)
	return out
}

// Market looks up a tracked contract by address.
func (r *Registry) Market(addr model.Address) (Market, bool) {
	m, ok := r.markets[addr]
	return m, ok
}
