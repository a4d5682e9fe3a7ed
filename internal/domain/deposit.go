package domain

import "time"

type DepositLotStatus string

const (
	DepositRequired   DepositLotStatus = "REQUIRED"
	DepositHeld       DepositLotStatus = "HELD"
	DepositRefundable DepositLotStatus = "REFUNDABLE"
	DepositRefunded   DepositLotStatus = "REFUNDED"
)

// depositStatusRank defines the total order of the lot lifecycle.
// Transitions must only move forward.
var depositStatusRank = map[DepositLotStatus]int{
	DepositRequired:   0,
	DepositHeld:       1,
	DepositRefundable: 2,
	DepositRefunded:   3,
}

func (s DepositLotStatus) CanTransitionTo(next DepositLotStatus) bool {
	from, ok := depositStatusRank[s]
	if !ok {
		return false
	}
	to, ok := depositStatusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

type DepositLot struct {
	ID             string
	SellerID       string
	RequiredAmount float64
	// Balance is the remaining deductible value of the lot.
	// Set to RequiredAmount when the lot becomes HELD, decremented by deductions.
	Balance      float64
	Currency     string
	Status       DepositLotStatus
	RequiredAt   time.Time
	HeldAt       *time.Time
	RefundableAt *time.Time
	RefundedAt   *time.Time
}

type DepositLotRepository interface {
	CreateLot(lot *DepositLot) error
	GetLotByID(lotID string) (*DepositLot, error)
	GetLotsBySellerID(sellerID string) ([]*DepositLot, error)
	// UpdateLotStatusCAS performs the status transition as a single guarded
	// update. Returns false when the lot was not in the expected source status.
	UpdateLotStatusCAS(lotID string, from, to DepositLotStatus, at time.Time) (bool, error)
	// MatureLots moves every HELD lot whose holding period elapsed to
	// REFUNDABLE. Returns the number of lots advanced.
	MatureLots(now time.Time, holdingPeriod time.Duration) (int64, error)
	// HeldBalance is the sum of remaining balances over the seller's HELD lots.
	HeldBalance(sellerID string) (float64, error)
	// DeductFromHeld consumes the seller's HELD lots oldest-held-first until
	// amount is covered or lots are exhausted. The whole selection and
	// consumption runs in one transaction with the seller's lots locked.
	// Returns the amount actually deducted and the held balance left after.
	DeductFromHeld(sellerID string, amount float64) (deducted float64, remaining float64, err error)
}
