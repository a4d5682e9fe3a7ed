package domain

import "time"

type CompensationStatus string

const (
	CompensationNeeded     CompensationStatus = "NEEDED"
	CompensationProcessing CompensationStatus = "PROCESSING"
	CompensationResolved   CompensationStatus = "RESOLVED"
	CompensationFailed     CompensationStatus = "FAILED"
)

type CompensationSource string

const (
	CompensationFromRefund   CompensationSource = "REFUND"
	CompensationFromTransfer CompensationSource = "TRANSFER"
)

// PaymentCompensation is a detected shortfall between the expected ledger
// amount and what actually settled for a transfer or refund.
type PaymentCompensation struct {
	ID         string
	RelatedID  string
	Source     CompensationSource
	SellerID   string
	Amount     float64
	Currency   string
	Status     CompensationStatus
	CreatedAt  time.Time
	ResolvedAt *time.Time
}

type CompensationRepository interface {
	// CreateIfAbsent inserts the compensation unless one already exists for
	// the same related transfer/refund id. Returns true when inserted.
	CreateIfAbsent(compensation *PaymentCompensation) (bool, error)
	GetCompensationByID(compensationID string) (*PaymentCompensation, error)
	FindByStatus(status CompensationStatus, limit int) ([]*PaymentCompensation, error)
	// UpdateCompensationStatusCAS performs the status transition as a single
	// guarded update. False when the row was not in the expected source status.
	UpdateCompensationStatusCAS(compensationID string, from, to CompensationStatus, at time.Time) (bool, error)
}
