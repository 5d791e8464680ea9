// Package query answers point queries against a reconciliation result: the
// tranche status of one operation, the full status of a (project, category,
// counterparty) triple, and overpayment checks for proposed new tranches.
package query

import (
	"github.com/shopspring/decimal"

	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/models"
)

// Service answers queries against one recomputation result. A Service is only
// as fresh as the result it wraps; rebuild it after every recompute.
type Service struct {
	res *engine.Result
}

// New wraps a recomputation result for querying.
func New(res *engine.Result) *Service {
	return &Service{res: res}
}

// TrancheStatus describes one operation's standing within its deal.
type TrancheStatus struct {
	// TrancheIndex is the 1-based tranche number (0 for non-income and retail).
	TrancheIndex int
	// IsDealClosed is true when the tranche was individually marked closed or
	// its whole deal has since become inactive.
	IsDealClosed bool
}

// DealStatus is the full standing of the newest deal under a group key.
type DealStatus struct {
	TotalDeal     decimal.Decimal
	PaidTotal     decimal.Decimal
	Debt          decimal.Decimal
	ActiveTranche *models.Operation
	TranchesCount int
	IsClosed      bool
}

// TrancheStatus reports the status of a single processed operation, or nil
// when the operation is unknown to the engine.
func (s *Service) TrancheStatus(opID string) *TrancheStatus {
	st, ok := s.res.Status(opID)
	if !ok {
		return nil
	}

	closed := st.IsDealClosed
	if deal, found := s.res.DealByID(st.DealID); found && !deal.IsActive() {
		closed = true
	}

	return &TrancheStatus{
		TrancheIndex: st.TrancheIndex,
		IsDealClosed: closed,
	}
}

// DealStatus reports the standing of the (project, category, contractor)
// triple. When no B2B history exists and the contractor is the retail
// individual, the retail box of the (project, category) pair is consulted
// instead. The newest history entry is always the one reported; callers use
// Debt and IsClosed to tell whether it is still live.
func (s *Service) DealStatus(projectID, categoryID, contractorID string) DealStatus {
	hist := s.res.History(models.B2BKey(projectID, categoryID, contractorID))
	if len(hist) == 0 && contractorID != "" && contractorID == s.res.RetailIndividualID {
		hist = s.res.History(models.RetailKey(projectID, categoryID))
	}
	if len(hist) == 0 {
		return DealStatus{}
	}

	deal := hist[len(hist)-1]
	active := deal.IsActive()

	debt := decimal.Zero
	if active {
		debt = deal.Debt()
	}

	return DealStatus{
		TotalDeal:     deal.Budget,
		PaidTotal:     deal.Received,
		Debt:          debt,
		ActiveTranche: openTranche(deal),
		TranchesCount: deal.IncomeCount,
		IsClosed:      !active,
	}
}

// CheckOverpayment reports whether adding amount as a new tranche would push
// the paid total past the contracted budget. Retail counterparties and
// unbudgeted or already-settled deals can never be overpaid.
func (s *Service) CheckOverpayment(projectID, categoryID, contractorID string, amount decimal.Decimal) bool {
	if contractorID != "" && contractorID == s.res.RetailIndividualID {
		return false
	}

	status := s.DealStatus(projectID, categoryID, contractorID)
	if status.TotalDeal.IsZero() {
		return false
	}
	if !status.Debt.IsPositive() {
		return false
	}

	return status.PaidTotal.Add(amount).GreaterThan(status.TotalDeal)
}

// openTranche finds the most recent income that is not individually closed.
// The returned operation is a copy; mutating it does not touch the deal.
func openTranche(deal *models.Deal) *models.Operation {
	for i := len(deal.Ops) - 1; i >= 0; i-- {
		if deal.Ops[i].IsIncome() && !deal.Ops[i].IsClosed {
			op := deal.Ops[i]
			return &op
		}
	}
	return nil
}
