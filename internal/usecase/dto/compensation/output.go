package compensation

type ProcessOutput struct {
	Status string
	DebtID string
}
