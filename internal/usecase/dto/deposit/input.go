package deposit

type CheckDepositRequirementInput struct {
	SellerID           string
	PendingOrderAmount float64
}

type RequireDepositInput struct {
	SellerID       string
	RequiredAmount float64
	Currency       string
}
