package models

import "github.com/shopspring/decimal"

// DealKind distinguishes contracted B2B deals from retail settlement boxes.
type DealKind string

const (
	// KindB2B is an engagement with a contracted counterparty, tracking a
	// budget against tranche incomes and work postings.
	KindB2B DealKind = "b2b"
	// KindRetail is the settlement box for walk-in counterparties of one
	// (project, category) pair. A retail history holds exactly one box and
	// its budget is never used for debt math.
	KindRetail DealKind = "retail"
)

// Deal is the accumulator for one history slot within a group: a B2B deal or
// a retail box, depending on Kind. Within a history only the last entry is
// open for attachment; earlier entries are frozen once a newer one exists.
type Deal struct {
	ID   string
	Key  string
	Kind DealKind

	// Budget is the running maximum of all budget hints seen while the deal
	// was active. It never decreases.
	Budget decimal.Decimal
	// Received is the sum of income magnitudes attached to this deal.
	Received decimal.Decimal
	// WorkedOut is the sum of expense/act magnitudes attached to this deal.
	WorkedOut decimal.Decimal

	// IncomeCount counts attached incomes and drives 1-based tranche numbering.
	IncomeCount int
	// HasOpenOps is true when any attached income is not individually closed.
	HasOpenOps bool
	// Ops holds the attached operations in processing order.
	Ops []Operation
}

// IsRetail reports whether this accumulator is a retail box.
func (d *Deal) IsRetail() bool {
	return d.Kind == KindRetail
}

// Debt returns the outstanding amount the counterparty owes under this deal:
// max(0, budget-received) for B2B, max(0, workedOut-received) for retail.
func (d *Deal) Debt() decimal.Decimal {
	var debt decimal.Decimal
	if d.IsRetail() {
		debt = d.WorkedOut.Sub(d.Received)
	} else {
		debt = d.Budget.Sub(d.Received)
	}
	if debt.IsNegative() {
		return decimal.Zero
	}
	return debt
}

// Overpayment returns the amount we owe back under this deal:
// max(0, received-workedOut), the same formula for both kinds.
func (d *Deal) Overpayment() decimal.Decimal {
	over := d.Received.Sub(d.WorkedOut)
	if over.IsNegative() {
		return decimal.Zero
	}
	return over
}

// IsActive reports whether the deal's work is not yet fully reconciled. An
// inactive deal no longer accepts unbudgeted income tranches and is excluded
// from liability sums.
func (d *Deal) IsActive() bool {
	if d.HasOpenOps {
		return true
	}
	if d.Budget.IsPositive() {
		return d.Budget.GreaterThan(d.Received)
	}
	return d.Received.GreaterThan(d.WorkedOut)
}

// EffectivelyClosed reports whether a budgeted deal has been financially
// satisfied: a positive budget fully covered by received tranches. Any later
// budget-bearing operation then opens a new engagement instead of amending
// this one.
func (d *Deal) EffectivelyClosed() bool {
	return d.Budget.IsPositive() && !d.Budget.GreaterThan(d.Received)
}
