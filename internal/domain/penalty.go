package domain

import "time"

type PenaltyTier string

const (
	TierWarning       PenaltyTier = "WARNING"
	TierRestrictSales PenaltyTier = "RESTRICT_SALES"
	TierSuspend       PenaltyTier = "SUSPEND"
	TierDisable       PenaltyTier = "DISABLE"
)

type PenaltyStatus string

const (
	PenaltyActive   PenaltyStatus = "ACTIVE"
	PenaltyResolved PenaltyStatus = "RESOLVED"
)

// PenaltyLadder is the escalating restriction ladder applied per
// newly-overdue obligation. The rung is picked by the seller's current
// active-penalty count, clamped to the last tier.
var PenaltyLadder = [...]PenaltyTier{TierWarning, TierRestrictSales, TierSuspend, TierDisable}

func TierForActiveCount(activeCount int) PenaltyTier {
	if activeCount < 0 {
		activeCount = 0
	}
	if activeCount >= len(PenaltyLadder) {
		activeCount = len(PenaltyLadder) - 1
	}
	return PenaltyLadder[activeCount]
}

// SellerPenalty is an active restriction on a seller, tied to the
// overdue obligation that produced it.
type SellerPenalty struct {
	ID           string
	SellerID     string
	ObligationID string
	Tier         PenaltyTier
	Status       PenaltyStatus
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}

type PenaltyRepository interface {
	CreatePenalty(penalty *SellerPenalty) error
	CountActiveBySeller(sellerID string) (int64, error)
	GetActiveBySeller(sellerID string) ([]*SellerPenalty, error)
	// HasPenaltyForObligation reports whether any penalty row exists for the
	// obligation. Keeps the sweep idempotent across repeated runs.
	HasPenaltyForObligation(obligationID string) (bool, error)
	// ResolveByObligation marks the seller's active penalties for the
	// obligation RESOLVED and returns how many were resolved.
	ResolveByObligation(sellerID, obligationID string, at time.Time) (int64, error)
}
