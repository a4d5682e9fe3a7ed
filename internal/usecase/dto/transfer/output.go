package transfer

type RetryBatchOutput struct {
	SucceededCount int
	FailedCount    int
}
