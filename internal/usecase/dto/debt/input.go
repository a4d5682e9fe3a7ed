package debt

type CreateDebtInput struct {
	SellerID  string
	OrderID   string
	DisputeID *string
	RefundID  string
	Amount    float64
	Currency  string
	Reason    string
}
