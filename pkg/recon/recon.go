// Package recon is the public entry point for deal reconciliation. It ties
// the feed loader, the recomputation engine and the result cache together so
// callers get memoized full-feed recomputation behind one call.
package recon

import (
	"time"

	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/feed"
	"finflow/dealrecon/internal/liability"
	"finflow/dealrecon/internal/models"
	"finflow/dealrecon/internal/query"
	"finflow/dealrecon/internal/store"
)

// Reconciler memoizes recomputation results by feed fingerprint. It is safe
// for concurrent use.
type Reconciler struct {
	cache    *store.ResultCache
	retailID string
}

// New returns a Reconciler for the given retail counterparty identifier.
func New(retailIndividualID string) *Reconciler {
	return &Reconciler{
		cache:    store.NewResultCache(),
		retailID: retailIndividualID,
	}
}

// RetailIndividualID returns the retail counterparty this Reconciler groups
// person-facing incomes under.
func (r *Reconciler) RetailIndividualID() string {
	return r.retailID
}

// Reconcile returns the reconciliation result for the given feed, reusing a
// cached result when an identical feed was already processed.
func (r *Reconciler) Reconcile(ops []models.Operation) *engine.Result {
	fp := store.Fingerprint(ops, r.retailID)
	return r.cache.GetOrCompute(fp, func() *engine.Result {
		return engine.Recompute(ops, r.retailID)
	})
}

// ReconcileFile loads, validates and reconciles an operations feed file.
// The format is detected from the file extension.
func (r *Reconciler) ReconcileFile(path string, delimiter rune) (*engine.Result, error) {
	ops, err := feed.LoadFile(path, delimiter)
	if err != nil {
		return nil, err
	}
	return r.Reconcile(ops), nil
}

// Query wraps a result in a query service.
func (r *Reconciler) Query(res *engine.Result) *query.Service {
	return query.New(res)
}

// Liabilities computes the liability summary of a result as of the given
// moment.
func (r *Reconciler) Liabilities(res *engine.Result, asOf time.Time) liability.Summary {
	return liability.Summarize(res, asOf)
}

// Invalidate drops every cached result. The next Reconcile call recomputes
// from scratch.
func (r *Reconciler) Invalidate() {
	r.cache.Reset()
}

// CacheSize reports how many distinct feeds are currently memoized.
func (r *Reconciler) CacheSize() int {
	return r.cache.Len()
}
