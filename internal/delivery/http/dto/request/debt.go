package request

type CreateDebtRequest struct {
	SellerID  string  `json:"seller_id"`
	OrderID   string  `json:"order_id"`
	DisputeID *string `json:"dispute_id,omitempty"`
	RefundID  string  `json:"refund_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Reason    string  `json:"reason"`
}
