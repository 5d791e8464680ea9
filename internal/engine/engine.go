// Package engine implements the deal reconciliation state machine. It folds a
// flat, unordered stream of ledger operations into per-group histories of
// deals and retail boxes, from which liabilities and point queries are derived.
//
// Recomputation is pure and wholesale: the engine holds no state between
// calls, and a Result is only valid until the caller replaces it with the
// result of a newer pass.
package engine

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"finflow/dealrecon/internal/classifier"
	"finflow/dealrecon/internal/logging"
	"finflow/dealrecon/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger for the engine.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Result is the complete outcome of one recomputation pass. It owns every
// Deal record it references; OpStatus entries carry deal ids that resolve
// only within this same result.
type Result struct {
	// ResultID uniquely identifies this recomputation pass.
	ResultID string
	// RetailIndividualID is the retail counterparty id the pass was run with.
	RetailIndividualID string
	// ComputedAt records when the pass ran.
	ComputedAt time.Time

	// Groups maps group keys to append-only deal histories. Only the last
	// entry of a history is ever open for attachment.
	Groups map[string][]*models.Deal

	statuses  map[string]models.OpStatus
	dealIndex map[string]*models.Deal
}

// Status returns the derived status of a processed operation.
func (r *Result) Status(opID string) (models.OpStatus, bool) {
	st, ok := r.statuses[opID]
	return st, ok
}

// DealByID resolves a deal id recorded in an OpStatus against this result.
func (r *Result) DealByID(dealID string) (*models.Deal, bool) {
	d, ok := r.dealIndex[dealID]
	return d, ok
}

// History returns the ordered deal history of a group key, or nil.
func (r *Result) History(key string) []*models.Deal {
	return r.Groups[key]
}

// Keys returns all group keys in deterministic (sorted) order.
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.Groups))
	for k := range r.Groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Recompute runs a full reconciliation pass over the feed snapshot. The feed
// slice is not mutated; operations are processed in ascending date order with
// ascending id as the deterministic same-day tie-break.
func Recompute(feed []models.Operation, retailIndividualID string) *Result {
	res := &Result{
		ResultID:           uuid.NewString(),
		RetailIndividualID: retailIndividualID,
		ComputedAt:         time.Now(),
		Groups:             make(map[string][]*models.Deal),
		statuses:           make(map[string]models.OpStatus),
		dealIndex:          make(map[string]*models.Deal),
	}

	ordered := make([]models.Operation, len(feed))
	copy(ordered, feed)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID < ordered[j].ID
	})

	for _, op := range ordered {
		assignment, ok := classifier.Classify(op, retailIndividualID)
		if !ok {
			continue
		}
		if assignment.IsRetail {
			res.applyRetail(assignment.Key, op)
		} else {
			res.applyB2B(assignment.Key, op)
		}
	}

	log.Debug("reconciliation pass complete",
		logging.Field{Key: logging.FieldCount, Value: len(ordered)},
		logging.Field{Key: "groups", Value: len(res.Groups)})

	return res
}

// applyRetail folds one operation into the single settlement box of a retail
// key, creating the box on first contact. Retail closure is derived at query
// time, so the per-op status never stamps the deal closed and exposes no
// tranche ordinal.
func (r *Result) applyRetail(key string, op models.Operation) {
	hist := r.Groups[key]
	if len(hist) == 0 {
		box := &models.Deal{
			ID:   models.DealID(key, 1),
			Key:  key,
			Kind: models.KindRetail,
		}
		hist = append(hist, box)
		r.Groups[key] = hist
		r.dealIndex[box.ID] = box
	}
	box := hist[len(hist)-1]

	box.Ops = append(box.Ops, op)
	if op.IsIncome() {
		box.Received = box.Received.Add(op.AbsAmount())
		box.IncomeCount++
		if !op.IsClosed {
			box.HasOpenOps = true
		}
	} else {
		box.WorkedOut = box.WorkedOut.Add(op.AbsAmount())
	}

	r.statuses[op.ID] = models.OpStatus{
		TrancheIndex: 0,
		IsDealClosed: false,
		DealID:       box.ID,
	}
}

// applyB2B folds one operation into a B2B group history, deciding between
// attaching to the current deal and opening a new one.
//
// Budget-bearing operations act as deal openers/updaters: they amend an
// in-flight deal but start a new engagement once the current one is
// financially satisfied. Unbudgeted incomes ride along as successive tranches
// while the current deal is active. Work postings never spawn a deal; they
// close out whichever deal is current.
func (r *Result) applyB2B(key string, op models.Operation) {
	hist := r.Groups[key]
	var cur *models.Deal
	if len(hist) > 0 {
		cur = hist[len(hist)-1]
	}

	opBudget := op.BudgetHint()

	startNew := false
	switch {
	case opBudget.IsPositive():
		startNew = cur == nil || cur.EffectivelyClosed()
	case cur == nil:
		startNew = true
	case op.IsIncome():
		startNew = !cur.IsActive()
	}

	if startNew {
		cur = &models.Deal{
			ID:     models.DealID(key, len(hist)+1),
			Key:    key,
			Kind:   models.KindB2B,
			Budget: opBudget,
		}
		hist = append(hist, cur)
		r.Groups[key] = hist
		r.dealIndex[cur.ID] = cur
		log.Debug("opened new deal",
			logging.Field{Key: logging.FieldGroupKey, Value: key},
			logging.Field{Key: logging.FieldDealID, Value: cur.ID})
	}

	// Budget never decreases within a deal's lifetime.
	if opBudget.GreaterThan(cur.Budget) {
		cur.Budget = opBudget
	}

	cur.Ops = append(cur.Ops, op)

	trancheIndex := 0
	if op.IsIncome() {
		cur.Received = cur.Received.Add(op.AbsAmount())
		cur.IncomeCount++
		trancheIndex = cur.IncomeCount
		if !op.IsClosed {
			cur.HasOpenOps = true
		}
	} else {
		cur.WorkedOut = cur.WorkedOut.Add(op.AbsAmount())
	}

	r.statuses[op.ID] = models.OpStatus{
		TrancheIndex: trancheIndex,
		IsDealClosed: op.IsClosed,
		DealID:       cur.ID,
	}
}
