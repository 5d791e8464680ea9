// Package classifier decides, per operation, whether it participates in deal
// reconciliation at all and, if so, which group it belongs to. Operations it
// rejects are invisible to the engine; rejection is silent by contract.
package classifier

import (
	"finflow/dealrecon/internal/models"
)

// Assignment is the classifier's verdict for one eligible operation.
type Assignment struct {
	// IsRetail is true when the counterparty is the workspace's retail
	// individual, routing the operation into a retail settlement box.
	IsRetail bool
	// Key is the group key the operation reconciles under.
	Key string
	// CounterpartyID is the resolved counterparty identity used for the key.
	CounterpartyID string
}

// Classify resolves the reconciliation assignment of a single operation.
// The second return value is false when the operation must be skipped:
// transfers, operations missing a grouping dimension or counterparty, plain
// B2B incomes without deal intent, and settled retail tranches.
func Classify(op models.Operation, retailIndividualID string) (Assignment, bool) {
	if op.Type == models.TypeTransfer {
		return Assignment{}, false
	}
	if op.ProjectID == "" || op.CategoryID == "" {
		return Assignment{}, false
	}

	isRetail := retailIndividualID != "" && op.CounterpartyIndividualID == retailIndividualID

	if isRetail {
		// A fully-settled retail tranche that is not itself a fresh prepayment
		// carries no further reconciliation signal.
		if op.IsIncome() && op.IsClosed && !op.IsPrepayment {
			return Assignment{}, false
		}
		return Assignment{
			IsRetail:       true,
			Key:            models.RetailKey(op.ProjectID, op.CategoryID),
			CounterpartyID: retailIndividualID,
		}, true
	}

	counterpartyID := op.ContractorID
	if counterpartyID == "" {
		counterpartyID = op.CounterpartyIndividualID
	}
	if counterpartyID == "" {
		return Assignment{}, false
	}

	// Plain, unbudgeted B2B incomes without explicit deal intent are ordinary
	// revenue, not deal activity.
	if op.IsIncome() && !op.IsPrepayment && !op.IsDealTranche && !op.BudgetHint().IsPositive() {
		return Assignment{}, false
	}

	return Assignment{
		Key:            models.B2BKey(op.ProjectID, op.CategoryID, counterpartyID),
		CounterpartyID: counterpartyID,
	}, true
}
