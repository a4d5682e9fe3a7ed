package obligation

import "time"

type CreateObligationInput struct {
	SellerID string
	OrderID  string
	Amount   float64
	Currency string
	DueDate  time.Time
}
