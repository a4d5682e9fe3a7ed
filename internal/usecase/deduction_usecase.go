package usecase

import (
	"fmt"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
	deductiondto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/deduction"
)

type DeductionUsecase interface {
	Deduct(input *deductiondto.DeductInput) (*deductiondto.DeductionResult, error)
}

type DefaultDeductionUsecase struct {
	lotRepo            domain.DepositLotRepository
	rates              domain.RateSource
	notifier           domain.SellerNotifier
	publisher          EventPublisher
	audit              domain.AuditLogger
	settlementCurrency string
}

func NewDefaultDeductionUsecase(
	lotRepo domain.DepositLotRepository,
	rates domain.RateSource,
	notifier domain.SellerNotifier,
	publisher EventPublisher,
	audit domain.AuditLogger,
	settlementCurrency string,
) *DefaultDeductionUsecase {
	return &DefaultDeductionUsecase{
		lotRepo:            lotRepo,
		rates:              rates,
		notifier:           notifier,
		publisher:          publisher,
		audit:              audit,
		settlementCurrency: settlementCurrency,
	}
}

// Deduct consumes the seller's held lots oldest-first until the requested
// amount is covered or lots run out. A shortfall is reported back, not
// cascaded into a debt; that call belongs to the caller.
func (uc *DefaultDeductionUsecase) Deduct(input *deductiondto.DeductInput) (*deductiondto.DeductionResult, error) {
	if input.SellerID == "" {
		return nil, fmt.Errorf("%w: seller id is required", domain.ErrValidation)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if input.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}

	amount, err := uc.rates.Convert(input.Amount, input.Currency, uc.settlementCurrency)
	if err != nil {
		return nil, err
	}

	deducted, remaining, err := uc.lotRepo.DeductFromHeld(input.SellerID, amount)
	if err != nil {
		recordAudit(uc.audit, actorEngine, "deduction.deduct", input.RelatedID, input.RelatedType, false, err.Error())
		return nil, err
	}

	if deducted > 0 {
		uc.notifier.NotifySeller(domain.Notification{
			SellerID: input.SellerID,
			Kind:     "DEDUCTION",
			Message:  fmt.Sprintf("%.2f %s was deducted from your deposit: %s", deducted, uc.settlementCurrency, input.Reason),
			Amount:   deducted,
			Currency: uc.settlementCurrency,
		})
		publishEvent(uc.publisher, kafka.SettlementEvent{
			Kind:       kafka.EventDeduction,
			SellerID:   input.SellerID,
			ResourceID: input.RelatedID,
			Amount:     deducted,
			Currency:   uc.settlementCurrency,
			Reason:     input.Reason,
		})
	}
	recordAudit(uc.audit, actorEngine, "deduction.deduct", input.RelatedID, input.RelatedType, true, "")

	return &deductiondto.DeductionResult{
		RequestedAmount:  amount,
		DeductedAmount:   deducted,
		RemainingBalance: remaining,
	}, nil
}
