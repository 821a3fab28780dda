package nostra

import (
	"errors"
	"fmt"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

// ErrUnknownRoute reports a tracked event that cannot be resolved for its contract.
var ErrUnknownRoute = errors.New("unknown event route")

const (
	eventMint               = "Mint"
	eventBurn               = "Burn"
	eventTransfer           = "Transfer"
	eventCollateralEnabled  = "CollateralEnabled"
	eventCollateralDisabled = "CollateralDisabled"
	eventLiquidation        = "Liquidation"
)

// eventNames maps every tracked upstream event name to its canonical name.
var eventNames = map[string]string{
	eventMint:               eventMint,
	eventBurn:               eventBurn,
	eventTransfer:           eventTransfer,
	eventCollateralEnabled:  eventCollateralEnabled,
	eventCollateralDisabled: eventCollateralDisabled,
	eventLiquidation:        eventLiquidation,

	"openzeppelin::token::erc20_v070::erc20::ERC20::Transfer": eventTransfer,
}

type routeKey struct {
	category Category
	event    string
}

var operations = map[routeKey]Operation{
	{CategoryCollateral, eventMint}:                    OperationDeposit,
	{CategoryCollateral, eventBurn}:                    OperationWithdraw,
	{CategoryCollateral, eventTransfer}:                OperationTransferCollateral,
	{CategoryInterestBearingCollateral, eventMint}:     OperationDeposit,
	{CategoryInterestBearingCollateral, eventBurn}:     OperationWithdraw,
	{CategoryInterestBearingCollateral, eventTransfer}: OperationTransferCollateral,
	{CategoryDebt, eventMint}:                          OperationBorrow,
	{CategoryDebt, eventBurn}:                          OperationRepay,
	{CategoryDebt, eventTransfer}:                      OperationTransferDebt,
	{CategoryMarket, eventCollateralEnabled}:           OperationEnableCollateral,
	{CategoryMarket, eventCollateralDisabled}:          OperationDisableCollateral,
	{CategoryMarket, eventLiquidation}:                 OperationLiquidate,
}

// Route is the resolved destination of one event.
type Route struct {
	Operation Operation
	Market    Market
}

// Router resolves events to ledger operations. It holds no mutable state.
type Router struct {
	registry *Registry
}

// NewRouter builds a Router over the registry.
func NewRouter(registry *Registry) *Router {
	return &Router{registry: registry}
}

// Route resolves rec. Untracked event names yield OperationNone and no error;
// tracked names on an unknown contract or with no resolution for the
// contract's category yield OperationUnknown and ErrUnknownRoute.
func (r *Router) Route(rec model.EventRecord) (Route, error) {
	if rec.ContractAddress == r.registry.InterestRateModel() {
		return Route{Operation: OperationInterestRateModel}, nil
	}

	name, ok := eventNames[rec.EventName]
	if !ok {
		return Route{Operation: OperationNone}, nil
	}

	market, ok := r.registry.Market(rec.ContractAddress)
	if !ok {
		return Route{Operation: OperationUnknown}, fmt.Errorf("%w: untracked contract %s for event %s", ErrUnknownRoute, rec.ContractAddress, rec.EventName)
	}

	op, ok := operations[routeKey{category: market.Category, event: name}]
	if !ok {
		return Route{Operation: OperationUnknown, Market: market}, fmt.Errorf("%w: event %s on %s contract %s", ErrUnknownRoute, rec.EventName, market.Category, rec.ContractAddress)
	}
	return Route{Operation: op, Market: market}, nil
}
