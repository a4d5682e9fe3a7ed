package request

import "time"

type CreateObligationRequest struct {
	SellerID string    `json:"seller_id"`
	OrderID  string    `json:"order_id"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	DueDate  time.Time `json:"due_date"`
}

type ResolvePenaltyRequest struct {
	SellerID     string `json:"seller_id"`
	ObligationID string `json:"obligation_id"`
}
