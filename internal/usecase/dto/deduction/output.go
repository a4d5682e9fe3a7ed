package deduction

// DeductionResult reports what was actually consumed. When DeductedAmount is
// less than requested the caller decides whether the shortfall becomes a
// debt or a warning; the engine does not cascade.
type DeductionResult struct {
	// RequestedAmount is the requested value converted to the settlement
	// currency, the same unit as DeductedAmount.
	RequestedAmount  float64
	DeductedAmount   float64
	RemainingBalance float64
}
