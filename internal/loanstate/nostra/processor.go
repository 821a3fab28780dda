package nostra

import (
	"fmt"

	"github.com/Tzienom/derisk-research/internal/loanstate/chain"
	"github.com/Tzienom/derisk-research/internal/loanstate/ledger"
	"github.com/Tzienom/derisk-research/internal/loanstate/model"
	"go.uber.org/zap"
)

// Processor folds ordered Nostra Alpha events into a ledger.
type Processor struct {
	registry *Registry
	router   *Router
	logger   *zap.Logger
}

// NewProcessor builds a Processor for the registry.
func NewProcessor(registry *Registry, logger *zap.Logger) *Processor {
	return &Processor{
		registry: registry,
		router:   NewRouter(registry),
		logger:   logger,
	}
}

// Fold applies records to l in the given order. A record that cannot be
// routed or applied is logged and skipped; it never stops the batch.
func (p *Processor) Fold(l *ledger.Ledger, records []model.EventRecord) chain.FoldStats {
	var stats chain.FoldStats
	for _, rec := range records {
		route, err := p.router.Route(rec)
		if err != nil {
			stats.Skipped++
			p.logger.Warn("skipping unroutable event",
				zap.String("contract", rec.ContractAddress.String()),
				zap.String("event", rec.EventName),
				zap.Uint64("block", rec.BlockNumber),
				zap.Uint64("id", rec.IntraBlockID),
				zap.Error(err),
			)
			continue
		}
		if route.Operation == OperationNone {
			stats.Ignored++
			p.logger.Debug("ignoring untracked event",
				zap.String("contract", rec.ContractAddress.String()),
				zap.String("event", rec.EventName),
			)
			continue
		}

		if err := p.apply(l, route, rec); err != nil {
			stats.Skipped++
			p.logger.Error("failed to fold event",
				zap.Stringer("operation", route.Operation),
				zap.String("contract", rec.ContractAddress.String()),
				zap.String("tx", rec.TransactionHash),
				zap.Uint64("block", rec.BlockNumber),
				zap.Uint64("id", rec.IntraBlockID),
				zap.Error(err),
			)
			continue
		}
		stats.Applied++
	}
	return stats
}

func (p *Processor) apply(l *ledger.Ledger, route Route, rec model.EventRecord) error {
	switch route.Operation {
	case OperationInterestRateModel:
		update, err := interestRateUpdate(rec, p.registry)
		if err != nil {
			return err
		}
		return l.UpdateInterestRateModel(update)

	case OperationDeposit, OperationWithdraw:
		kind, ok := collateralKind(route.Market.Category)
		if !ok {
			return fmt.Errorf("%s on %s contract", route.Operation, route.Market.Category)
		}
		account, value, err := accountAmount(rec)
		if err != nil {
			return err
		}
		if route.Operation == OperationDeposit {
			return l.Deposit(account, route.Market.Asset, kind, value)
		}
		return l.Withdraw(account, route.Market.Asset, kind, value)

	case OperationBorrow, OperationRepay:
		account, value, err := accountAmount(rec)
		if err != nil {
			return err
		}
		if route.Operation == OperationBorrow {
			return l.Borrow(account, route.Market.Asset, value)
		}
		return l.Repay(account, route.Market.Asset, value)

	case OperationTransferCollateral:
		kind, ok := collateralKind(route.Market.Category)
		if !ok {
			return fmt.Errorf("%s on %s contract", route.Operation, route.Market.Category)
		}
		from, to, value, err := transfer(rec)
		if err != nil {
			return err
		}
		return l.TransferCollateral(from, to, route.Market.Asset, kind, value)

	case OperationTransferDebt:
		from, to, value, err := transfer(rec)
		if err != nil {
			return err
		}
		return l.TransferDebt(from, to, route.Market.Asset, value)

	case OperationEnableCollateral, OperationDisableCollateral:
		account, asset, err := collateralToggle(rec, p.registry)
		if err != nil {
			return err
		}
		if route.Operation == OperationEnableCollateral {
			l.EnableCollateral(account, asset)
		} else {
			l.DisableCollateral(account, asset)
		}
		return nil

	case OperationLiquidate:
		liq, err := liquidation(rec, p.registry)
		if err != nil {
			return err
		}
		return l.Liquidate(liq)

	default:
		return fmt.Errorf("no fold for operation %s", route.Operation)
	}
}
