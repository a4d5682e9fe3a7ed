package deposit

type DepositRequirementOutput struct {
	RequiresDeposit bool
	RequiredAmount  float64
	Reason          string
}
