package domain

import "time"

type ObligationStatus string

const (
	ObligationPending ObligationStatus = "PENDING"
	ObligationPaid    ObligationStatus = "PAID"
	ObligationOverdue ObligationStatus = "OVERDUE"
)

// CommissionObligation is an amount a seller owes the platform
// for a specific order commission event.
type CommissionObligation struct {
	ID       string
	SellerID string
	OrderID  string
	Amount   float64
	Currency string
	DueDate  time.Time
	Status   ObligationStatus
}

type ObligationRepository interface {
	CreateObligation(obligation *CommissionObligation) error
	GetObligationByID(obligationID string) (*CommissionObligation, error)
	// FindOverdue returns PENDING obligations whose due date passed.
	FindOverdue(now time.Time) ([]*CommissionObligation, error)
	// FindEscalatable returns past-due obligations still in PENDING or
	// OVERDUE. The penalty sweep consumes this so that an obligation whose
	// ladder advance failed on a previous run is picked up again.
	FindEscalatable(now time.Time) ([]*CommissionObligation, error)
	// FindDueSoon returns PENDING obligations due within the given window.
	FindDueSoon(now time.Time, within time.Duration) ([]*CommissionObligation, error)
	// MarkOverdueCAS moves PENDING -> OVERDUE. False when already moved.
	MarkOverdueCAS(obligationID string) (bool, error)
	// MarkPaidCAS moves PENDING or OVERDUE -> PAID and reports the status the
	// obligation was in before the update.
	MarkPaidCAS(obligationID string) (previous ObligationStatus, moved bool, err error)
}
