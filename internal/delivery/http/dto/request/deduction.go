package request

type DeductRequest struct {
	SellerID    string  `json:"seller_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Reason      string  `json:"reason"`
	RelatedID   string  `json:"related_id"`
	RelatedType string  `json:"related_type"`
}
