package request

type CreatePayoutRequest struct {
	SellerID string  `json:"seller_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type BatchRequest struct {
	Limit int `json:"limit"`
}
