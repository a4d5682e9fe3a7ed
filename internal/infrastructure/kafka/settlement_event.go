package kafka

type SettlementEvent struct {
	Kind       string  `json:"kind"`
	SellerID   string  `json:"seller_id"`
	ResourceID string  `json:"resource_id"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
	Reason     string  `json:"reason"`
}

const (
	EventDepositRequired  = "DEPOSIT_REQUIRED"
	EventDepositHeld      = "DEPOSIT_HELD"
	EventDepositMatured   = "DEPOSIT_MATURED"
	EventDepositRefunded  = "DEPOSIT_REFUNDED"
	EventDeduction        = "DEDUCTION"
	EventDebtCreated      = "DEBT_CREATED"
	EventPenaltyApplied   = "PENALTY_APPLIED"
	EventPenaltyResolved  = "PENALTY_RESOLVED"
	EventTransferRetried  = "TRANSFER_RETRIED"
	EventCompensationDone = "COMPENSATION_RESOLVED"
)
