// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OperationType identifies the kind of ledger operation.
type OperationType string

const (
	// TypeIncome is money received from a counterparty.
	TypeIncome OperationType = "income"
	// TypeExpense is money spent, including work postings against a deal.
	TypeExpense OperationType = "expense"
	// TypeTransfer is an internal move between own accounts. Transfers never
	// participate in reconciliation.
	TypeTransfer OperationType = "transfer"
	// TypeAct is a work-acceptance posting. Acts behave like expenses for
	// reconciliation purposes.
	TypeAct OperationType = "act"
)

// String returns the string representation of the operation type.
func (t OperationType) String() string {
	return string(t)
}

// IsValid reports whether the operation type is one of the known kinds.
func (t OperationType) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer, TypeAct:
		return true
	}
	return false
}

// Operation is a single ledger operation as delivered by the feed adapter.
// The feed is assumed to be canonical: deduplicated, transfer-merged, and with
// all relational fields flattened to opaque string ids.
type Operation struct {
	ID                       string          `json:"id" yaml:"id"`
	Type                     OperationType   `json:"type" yaml:"type"`
	Date                     time.Time       `json:"date" yaml:"date"`
	Amount                   decimal.Decimal `json:"amount" yaml:"amount"`
	ProjectID                string          `json:"projectId" yaml:"projectId"`
	CategoryID               string          `json:"categoryId" yaml:"categoryId"`
	ContractorID             string          `json:"contractorId,omitempty" yaml:"contractorId,omitempty"`
	CounterpartyIndividualID string          `json:"counterpartyIndividualId,omitempty" yaml:"counterpartyIndividualId,omitempty"`
	TotalDealAmount          decimal.Decimal `json:"totalDealAmount,omitempty" yaml:"totalDealAmount,omitempty"`
	IsPrepayment             bool            `json:"isPrepayment,omitempty" yaml:"isPrepayment,omitempty"`
	IsDealTranche            bool            `json:"isDealTranche,omitempty" yaml:"isDealTranche,omitempty"`
	IsClosed                 bool            `json:"isClosed,omitempty" yaml:"isClosed,omitempty"`
}

// IsIncome reports whether the operation is an income.
func (o *Operation) IsIncome() bool {
	return o.Type == TypeIncome
}

// IsWorkPosting reports whether the operation posts work against a deal.
// Both expenses and acts count.
func (o *Operation) IsWorkPosting() bool {
	return o.Type == TypeExpense || o.Type == TypeAct
}

// AbsAmount returns the magnitude of the operation amount.
func (o *Operation) AbsAmount() decimal.Decimal {
	return o.Amount.Abs()
}

// BudgetHint returns the declared deal budget carried by this operation, or
// zero when the operation declares none. Negative hints are treated as absent.
func (o *Operation) BudgetHint() decimal.Decimal {
	if o.TotalDealAmount.IsPositive() {
		return o.TotalDealAmount
	}
	return decimal.Zero
}

// ParseAmount parses a string amount into a decimal. Anything that does not
// parse as a finite number (including NaN/Inf spellings and empty strings)
// degrades to zero rather than an error, per the feed contract.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "'", "")
	if amount == "" {
		return decimal.Zero
	}

	switch strings.ToLower(strings.TrimPrefix(amount, "-")) {
	case "nan", "inf", "infinity", "+inf":
		return decimal.Zero
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
