package domain

import "time"

// RateSource converts an amount between currencies. Implementations must be
// deterministic and side-effect free within one call.
type RateSource interface {
	Convert(amount float64, from, to string) (float64, error)
}

// TransferRequest is what the engine hands to the payment provider.
// The provider deduplicates on IdempotencyKey.
type TransferRequest struct {
	TransferID     string
	SellerID       string
	Amount         float64
	Currency       string
	IdempotencyKey string
}

type TransferResult struct {
	ProviderRef   string
	SettledAmount float64
}

// PaymentProvider executes the actual money movement. The engine only
// decides whether to call it and whether a retry is safe.
type PaymentProvider interface {
	ExecuteTransfer(req TransferRequest) (*TransferResult, error)
}

type SellerRole string

const (
	RoleSeller          SellerRole = "SELLER"
	RoleSellerSuspended SellerRole = "SELLER_SUSPENDED"
	RoleSellerDisabled  SellerRole = "SELLER_DISABLED"
)

type SellerProfile struct {
	ID       string
	Role     SellerRole
	Currency string
}

// SellerDirectory is the read-mostly seller profile collaborator. The engine
// writes only the role marker when a penalty tier demands it.
type SellerDirectory interface {
	GetSeller(sellerID string) (*SellerProfile, error)
	SetRole(sellerID string, role SellerRole) error
	HideListings(sellerID string) error
	RestorePrivileges(sellerID string) error
}

// RefundRecord mirrors the fields the engine reads from the refund
// collaborator. AdvancedByPlatform marks refunds the platform paid out of
// its own funds on the seller's behalf.
type RefundRecord struct {
	ID                 string
	OrderID            string
	SellerID           string
	Amount             float64
	Currency           string
	AdvancedByPlatform bool
}

type RefundDirectory interface {
	GetRefund(refundID string) (*RefundRecord, error)
	// ListAdvanced returns refunds the platform advanced, oldest first.
	ListAdvanced(limit int) ([]*RefundRecord, error)
}

type Notification struct {
	SellerID string
	Kind     string
	Message  string
	Amount   float64
	Currency string
}

// SellerNotifier delivers user-facing messages. Fire-and-forget: failure to
// notify must never fail the financial operation.
type SellerNotifier interface {
	NotifySeller(n Notification)
}

type AuditEntry struct {
	Actor        string
	Action       string
	ResourceID   string
	ResourceType string
	Success      bool
	FailReason   string
	At           time.Time
}

// AuditLogger records every state-changing call with its outcome.
// Entries must never contain secrets or full account numbers.
type AuditLogger interface {
	Record(entry AuditEntry) error
}
