// Package store provides the recompute-on-demand cache for reconciliation
// results. The engine itself is a pure function; callers key its output by a
// feed fingerprint and recompute wholesale whenever that fingerprint changes.
// Nothing is persisted — a cached result is just a memoized derivation.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"finflow/dealrecon/internal/engine"
	"finflow/dealrecon/internal/models"
)

// ResultCache is a mutex-guarded in-memory cache of reconciliation results
// keyed by feed fingerprint.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]*engine.Result
}

// NewResultCache creates an empty result cache.
func NewResultCache() *ResultCache {
	return &ResultCache{
		entries: make(map[string]*engine.Result),
	}
}

// Get returns the cached result for a fingerprint, if any.
func (c *ResultCache) Get(fingerprint string) (*engine.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[fingerprint]
	return res, ok
}

// GetOrCompute returns the cached result for a fingerprint, running compute
// and storing its output on a miss. The compute callback is a short blocking
// CPU task; the lock is held across it so concurrent callers with the same
// fingerprint do not duplicate work.
func (c *ResultCache) GetOrCompute(fingerprint string, compute func() *engine.Result) *engine.Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.entries[fingerprint]; ok {
		return res
	}
	res := compute()
	c.entries[fingerprint] = res
	return res
}

// Invalidate drops the cached result for a fingerprint.
func (c *ResultCache) Invalidate(fingerprint string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, fingerprint)
}

// Reset drops every cached result.
func (c *ResultCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*engine.Result)
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Fingerprint derives the feed-version token for a feed snapshot and retail
// individual id. The token is insensitive to feed arrival order: two feeds
// with the same operations in any order fingerprint identically.
func Fingerprint(ops []models.Operation, retailIndividualID string) string {
	lines := make([]string, 0, len(ops))
	for i := range ops {
		op := &ops[i]
		lines = append(lines, fmt.Sprintf("%s|%s|%d|%s|%s|%s|%s|%s|%s|%t|%t|%t",
			op.ID,
			op.Type,
			op.Date.UnixNano(),
			op.Amount.String(),
			op.ProjectID,
			op.CategoryID,
			op.ContractorID,
			op.CounterpartyIndividualID,
			op.TotalDealAmount.String(),
			op.IsPrepayment,
			op.IsDealTranche,
			op.IsClosed,
		))
	}
	sort.Strings(lines)

	h := sha256.New()
	h.Write([]byte(retailIndividualID))
	for _, line := range lines {
		h.Write([]byte{0})
		h.Write([]byte(line))
	}
	return hex.EncodeToString(h.Sum(nil))
}
