package request

type CheckDepositRequirementRequest struct {
	SellerID           string  `json:"seller_id"`
	PendingOrderAmount float64 `json:"pending_order_amount"`
}

type RequireDepositRequest struct {
	SellerID       string  `json:"seller_id"`
	RequiredAmount float64 `json:"required_amount"`
	Currency       string  `json:"currency"`
}

type MatureLotsRequest struct {
	// Now is optional; the server clock is used when omitted.
	Now string `json:"now,omitempty"`
}
