package transfer

type CreatePayoutInput struct {
	SellerID string
	Amount   float64
	Currency string
}
