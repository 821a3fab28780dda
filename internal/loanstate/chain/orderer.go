package chain

import (
	"slices"

	"github.com/Tzienom/derisk-research/internal/loanstate/model"
)

// Orderer sorts a fetched batch into fold order.
//
// The order is a stable two-tier sort, not a single comparator. Tier 0 holds
// every record emitted by the interest-rate-model contract, tier 1 everything
// else. Tier 0 always precedes tier 1 regardless of block numbers, so the
// ledger carries the latest rate parameters of the batch before any position
// event is folded. Inside a tier records ascend by (block number, intra-block
// id); for several updates of one asset the last one therefore wins.
type Orderer struct {
	interestRateModel model.Address
}

// NewOrderer builds an Orderer for the given interest-rate-model address.
func NewOrderer(interestRateModel model.Address) Orderer {
	return Orderer{interestRateModel: interestRateModel}
}

// Order returns a new slice in fold order; the input is left untouched.
func (o Orderer) Order(records []model.EventRecord) []model.EventRecord {
	rates := make([]model.EventRecord, 0)
	events := make([]model.EventRecord, 0, len(records))
	for _, r := range records {
		if r.ContractAddress == o.interestRateModel {
			rates = append(rates, r)
			continue
		}
		events = append(events, r)
	}

	slices.SortStableFunc(rates, compareRecords)
	slices.SortStableFunc(events, compareRecords)

	return append(rates, events...)
}

func compareRecords(a, b model.EventRecord) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
