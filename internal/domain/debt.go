package domain

type DebtStatus string

const (
	DebtPending DebtStatus = "PENDING"
	// DebtCollected - amount recovered from deposit or wage deduction.
	DebtCollected DebtStatus = "COLLECTED"
	// DebtPaid - settled by direct seller payment.
	DebtPaid DebtStatus = "PAID"
)

// SellerDebt is money the platform advanced on behalf of a seller,
// e.g. a refund paid to a buyer the seller should have funded.
type SellerDebt struct {
	ID        string
	SellerID  string
	OrderID   string
	DisputeID *string
	RefundID  string
	Amount    float64
	Currency  string
	Reason    string
	Status    DebtStatus
}

type DebtRepository interface {
	CreateDebt(debt *SellerDebt) error
	GetDebtByID(debtID string) (*SellerDebt, error)
	GetDebtsBySellerID(sellerID string) ([]*SellerDebt, error)
	ExistsByRefundID(refundID string) (bool, error)
	// UpdateDebtStatusCAS performs the status transition as a single guarded
	// update. Returns false when the debt was not in the expected source status.
	UpdateDebtStatusCAS(debtID string, from, to DebtStatus) (bool, error)
}
