// Package liability derives the outstanding-liability figures from a
// reconciliation result: what legal counterparts still owe us and what we owe
// them, both over the full period and as of a reference date.
package liability

import (
	"time"

	"github.com/shopspring/decimal"

	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/models"
)

// Summary holds the four scalar liability figures. Total figures cover the
// whole feed period; Current figures count only operations dated on or before
// the reference date.
type Summary struct {
	TheyOweTotal   decimal.Decimal
	WeOweTotal     decimal.Decimal
	TheyOweCurrent decimal.Decimal
	WeOweCurrent   decimal.Decimal
}

// Summarize walks all group histories of a result and sums liabilities over
// every active deal and box. Closed deals remain in their histories for audit
// and queries but contribute nothing here.
func Summarize(res *engine.Result, asOf time.Time) Summary {
	var sum Summary

	for key := range res.Groups {
		for _, deal := range res.History(key) {
			if !deal.IsActive() {
				continue
			}

			sum.TheyOweTotal = sum.TheyOweTotal.Add(deal.Debt())
			sum.WeOweTotal = sum.WeOweTotal.Add(deal.Overpayment())

			theyCur, weCur, ok := currentFigures(deal, asOf)
			if !ok {
				continue
			}
			sum.TheyOweCurrent = sum.TheyOweCurrent.Add(theyCur)
			sum.WeOweCurrent = sum.WeOweCurrent.Add(weCur)
		}
	}

	return sum
}

// currentFigures recomputes received/workedOut from the deal's operations
// dated on or before asOf, reusing the deal's stored budget. A deal with no
// qualifying operations is skipped entirely, budgeted or not.
func currentFigures(deal *models.Deal, asOf time.Time) (theyOwe, weOwe decimal.Decimal, ok bool) {
	var received, worked decimal.Decimal
	qualifying := 0
	for i := range deal.Ops {
		op := &deal.Ops[i]
		if op.Date.After(asOf) {
			continue
		}
		qualifying++
		if op.IsIncome() {
			received = received.Add(op.AbsAmount())
		} else {
			worked = worked.Add(op.AbsAmount())
		}
	}
	if qualifying == 0 {
		return decimal.Zero, decimal.Zero, false
	}

	if deal.IsRetail() {
		theyOwe = worked.Sub(received)
	} else {
		theyOwe = deal.Budget.Sub(received)
	}
	if theyOwe.IsNegative() {
		theyOwe = decimal.Zero
	}

	weOwe = received.Sub(worked)
	if weOwe.IsNegative() {
		weOwe = decimal.Zero
	}

	return theyOwe, weOwe, true
}
