package domain

import "time"

type TransferStatus string

const (
	TransferPending   TransferStatus = "PENDING"
	TransferSucceeded TransferStatus = "SUCCEEDED"
	TransferFailed    TransferStatus = "FAILED"
)

// TransferRecord is an outbound payout attempt. Retries reuse the same
// IdempotencyKey so the provider never executes the same payout twice.
type TransferRecord struct {
	ID             string
	SellerID       string
	Amount         float64
	SettledAmount  float64
	Currency       string
	IdempotencyKey string
	ProviderRef    string
	Status         TransferStatus
	AttemptCount   int
	LastAttemptAt  *time.Time
}

type TransferRepository interface {
	CreateTransfer(transfer *TransferRecord) error
	GetTransferByID(transferID string) (*TransferRecord, error)
	FindFailed(limit int) ([]*TransferRecord, error)
	// FindSettledMismatch returns SUCCEEDED transfers whose settled amount
	// exceeds the requested amount, oldest attempt first. Under-settlements
	// are excluded; those are the provider's to correct.
	FindSettledMismatch(limit int) ([]*TransferRecord, error)
	// UpdateTransferStatusCAS performs the status transition as a single
	// guarded update. False when the row was not in the expected source status.
	UpdateTransferStatusCAS(transferID string, from, to TransferStatus) (bool, error)
	// RecordAttempt stores the outcome of one provider attempt: status,
	// provider reference, settled amount, incremented attempt count.
	RecordAttempt(transferID string, status TransferStatus, providerRef string, settledAmount float64, at time.Time) error
}
