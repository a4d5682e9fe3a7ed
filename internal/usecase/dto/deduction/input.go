package deduction

type DeductInput struct {
	SellerID    string
	Amount      float64
	Currency    string
	Reason      string
	RelatedID   string
	RelatedType string
}
