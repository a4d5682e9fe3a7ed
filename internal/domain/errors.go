package domain

import "errors"

var (
	ErrValidation             = errors.New("validation failed")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrNotRefundable          = errors.New("deposit lot is not refundable")
	ErrInsufficientBalance    = errors.New("insufficient held balance")
	ErrDebtExceedsRefund      = errors.New("debt amount exceeds originating refund amount")
	ErrProviderFailure        = errors.New("payment provider failure")
	ErrConfiguration          = errors.New("configuration error")
	ErrNotFound               = errors.New("not found")
)
