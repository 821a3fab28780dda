package nostra

import "fmt"

// Operation is the ledger fold an event resolves to.
type Operation uint8

const (
	// OperationNone marks events outside the tracked set; they are ignored.
	OperationNone Operation = iota
	// OperationUnknown marks tracked event names with no resolution for their contract.
	OperationUnknown
	OperationInterestRateModel
	OperationDeposit
	OperationWithdraw
	OperationBorrow
	OperationRepay
	OperationEnableCollateral
	OperationDisableCollateral
	OperationTransferCollateral
	OperationTransferDebt
	OperationLiquidate
)

var operationNames = map[Operation]string{
	OperationNone:               "none",
	OperationUnknown:            "unknown",
	OperationInterestRateModel:  "interest_rate_model",
	OperationDeposit:            "deposit",
	OperationWithdraw:           "withdraw",
	OperationBorrow:             "borrow",
	OperationRepay:              "repay",
	OperationEnableCollateral:   "enable_collateral",
	OperationDisableCollateral:  "disable_collateral",
	OperationTransferCollateral: "transfer_collateral",
	OperationTransferDebt:       "transfer_debt",
	OperationLiquidate:          "liquidate",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", o)
}
