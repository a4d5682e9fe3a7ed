package notifier

type NotificationPayload struct {
	SellerID string  `json:"seller_id"`
	Kind     string  `json:"kind"`
	Message  string  `json:"message"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
