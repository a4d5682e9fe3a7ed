package response

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type DepositRequirementResponse struct {
	RequiresDeposit bool    `json:"requires_deposit"`
	RequiredAmount  float64 `json:"required_amount"`
	Reason          string  `json:"reason,omitempty"`
}

type DepositLotResponse struct {
	ID             string     `json:"id"`
	SellerID       string     `json:"seller_id"`
	RequiredAmount float64    `json:"required_amount"`
	Balance        float64    `json:"balance"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	RequiredAt     time.Time  `json:"required_at"`
	HeldAt         *time.Time `json:"held_at,omitempty"`
	RefundableAt   *time.Time `json:"refundable_at,omitempty"`
	RefundedAt     *time.Time `json:"refunded_at,omitempty"`
}

type MaturationResponse struct {
	Matured int64 `json:"matured"`
}

type DeductionResponse struct {
	DeductedAmount   float64 `json:"deducted_amount"`
	RemainingBalance float64 `json:"remaining_balance"`
}

type CreateDebtResponse struct {
	DebtID string `json:"debt_id"`
}

type SweepResponse struct {
	Applied int `json:"applied"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type ResolvePenaltyResponse struct {
	Resolved int64 `json:"resolved"`
}

type DetectCompensationsResponse struct {
	Detected int      `json:"detected"`
	IDs      []string `json:"ids"`
}

type ProcessCompensationResponse struct {
	Status string `json:"status"`
	DebtID string `json:"debt_id,omitempty"`
}

type TransferResponse struct {
	ID             string  `json:"id"`
	SellerID       string  `json:"seller_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
	AttemptCount   int     `json:"attempt_count"`
	IdempotencyKey string  `json:"idempotency_key"`
}

type RetryBatchResponse struct {
	SucceededCount int `json:"succeeded_count"`
	FailedCount    int `json:"failed_count"`
}

type SendRemindersResponse struct {
	Notified int `json:"notified"`
}
