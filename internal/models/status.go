package models

// OpStatus is the derived per-operation record produced by the state machine.
// DealID is a stable identifier; consumers resolve it against the owning
// recomputation result rather than holding a reference into a live accumulator.
type OpStatus struct {
	// TrancheIndex is the 1-based tranche number for B2B incomes, 0 for
	// everything else (retail boxes do not expose tranche ordering).
	TrancheIndex int
	// IsDealClosed mirrors the operation's own closed flag at processing time.
	IsDealClosed bool
	// DealID identifies the deal or box the operation was attached to.
	DealID string
}
