package usecase

import (
	"fmt"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/config"
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
	depositdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/deposit"
	"github.com/google/uuid"
)

type DepositUsecase interface {
	CheckDepositRequirement(input *depositdto.CheckDepositRequirementInput) (*depositdto.DepositRequirementOutput, error)
	RequireDeposit(input *depositdto.RequireDepositInput) (*domain.DepositLot, error)
	MarkHeld(lotID string) error
	MatureLots(now time.Time) (int64, error)
	Refund(lotID string) error
	GetLotsBySellerID(sellerID string) ([]*domain.DepositLot, error)
}

type DefaultDepositUsecase struct {
	lotRepo   domain.DepositLotRepository
	publisher EventPublisher
	audit     domain.AuditLogger
	policy    config.DepositPolicy
}

func NewDefaultDepositUsecase(
	lotRepo domain.DepositLotRepository,
	publisher EventPublisher,
	audit domain.AuditLogger,
	policy config.DepositPolicy,
) *DefaultDepositUsecase {
	return &DefaultDepositUsecase{
		lotRepo:   lotRepo,
		publisher: publisher,
		audit:     audit,
		policy:    policy,
	}
}

// CheckDepositRequirement compares the seller's unfilled-order exposure
// against the free collateral allowance plus already-held deposit balance.
func (uc *DefaultDepositUsecase) CheckDepositRequirement(input *depositdto.CheckDepositRequirementInput) (*depositdto.DepositRequirementOutput, error) {
	if input.SellerID == "" {
		return nil, fmt.Errorf("%w: seller id is required", domain.ErrValidation)
	}
	if input.PendingOrderAmount < 0 {
		return nil, fmt.Errorf("%w: pending order amount must not be negative", domain.ErrValidation)
	}

	heldBalance, err := uc.lotRepo.HeldBalance(input.SellerID)
	if err != nil {
		return nil, err
	}

	allowance := uc.policy.FreeCollateralAllowance + heldBalance
	if input.PendingOrderAmount <= allowance {
		return &depositdto.DepositRequirementOutput{RequiresDeposit: false}, nil
	}

	return &depositdto.DepositRequirementOutput{
		RequiresDeposit: true,
		RequiredAmount:  input.PendingOrderAmount - allowance,
		Reason:          "unfilled-order exposure exceeds free collateral allowance",
	}, nil
}

// RequireDeposit opens a REQUIRED lot. The lot ledger is single-currency:
// deductions subtract settlement-currency amounts from lot balances 1:1, so
// lots in any other currency are rejected here.
func (uc *DefaultDepositUsecase) RequireDeposit(input *depositdto.RequireDepositInput) (*domain.DepositLot, error) {
	if input.SellerID == "" {
		return nil, fmt.Errorf("%w: seller id is required", domain.ErrValidation)
	}
	if input.RequiredAmount <= 0 {
		return nil, fmt.Errorf("%w: required amount must be positive", domain.ErrValidation)
	}
	if input.Currency != uc.policy.SettlementCurrency {
		return nil, fmt.Errorf("%w: deposit currency must be %s, got %q", domain.ErrValidation, uc.policy.SettlementCurrency, input.Currency)
	}

	lot := domain.DepositLot{
		ID:             uuid.New().String(),
		SellerID:       input.SellerID,
		RequiredAmount: input.RequiredAmount,
		Currency:       input.Currency,
		Status:         domain.DepositRequired,
		RequiredAt:     time.Now(),
	}
	if err := uc.lotRepo.CreateLot(&lot); err != nil {
		recordAudit(uc.audit, actorEngine, "deposit.require", lot.ID, "deposit_lot", false, err.Error())
		return nil, err
	}

	publishEvent(uc.publisher, kafka.SettlementEvent{
		Kind:       kafka.EventDepositRequired,
		SellerID:   lot.SellerID,
		ResourceID: lot.ID,
		Amount:     lot.RequiredAmount,
		Currency:   lot.Currency,
		Status:     string(lot.Status),
	})
	recordAudit(uc.audit, actorEngine, "deposit.require", lot.ID, "deposit_lot", true, "")

	return &lot, nil
}

// MarkHeld transitions REQUIRED -> HELD once collateral funds actually post.
func (uc *DefaultDepositUsecase) MarkHeld(lotID string) error {
	moved, err := uc.lotRepo.UpdateLotStatusCAS(lotID, domain.DepositRequired, domain.DepositHeld, time.Now())
	if err != nil {
		return err
	}
	if !moved {
		lot, err := uc.lotRepo.GetLotByID(lotID)
		if err != nil {
			return err
		}
		recordAudit(uc.audit, actorEngine, "deposit.mark_held", lotID, "deposit_lot", false, fmt.Sprintf("lot is %s", lot.Status))
		return fmt.Errorf("%w: lot %s is %s, expected %s", domain.ErrInvalidStateTransition, lotID, lot.Status, domain.DepositRequired)
	}

	lot, err := uc.lotRepo.GetLotByID(lotID)
	if err != nil {
		return err
	}
	publishEvent(uc.publisher, kafka.SettlementEvent{
		Kind:       kafka.EventDepositHeld,
		SellerID:   lot.SellerID,
		ResourceID: lot.ID,
		Amount:     lot.Balance,
		Currency:   lot.Currency,
		Status:     string(lot.Status),
	})
	recordAudit(uc.audit, actorEngine, "deposit.mark_held", lotID, "deposit_lot", true, "")
	return nil
}

// MatureLots advances every held lot whose holding period elapsed.
// Idempotent: a re-run with the same now matches no rows.
func (uc *DefaultDepositUsecase) MatureLots(now time.Time) (int64, error) {
	holdingPeriod := time.Duration(uc.policy.HoldingPeriodDays) * 24 * time.Hour
	matured, err := uc.lotRepo.MatureLots(now, holdingPeriod)
	if err != nil {
		recordAudit(uc.audit, actorEngine, "deposit.mature", "", "deposit_lot", false, err.Error())
		return 0, err
	}
	if matured > 0 {
		recordAudit(uc.audit, actorEngine, "deposit.mature", "", "deposit_lot", true, "")
	}
	return matured, nil
}

func (uc *DefaultDepositUsecase) Refund(lotID string) error {
	moved, err := uc.lotRepo.UpdateLotStatusCAS(lotID, domain.DepositRefundable, domain.DepositRefunded, time.Now())
	if err != nil {
		return err
	}
	if !moved {
		lot, err := uc.lotRepo.GetLotByID(lotID)
		if err != nil {
			return err
		}
		recordAudit(uc.audit, actorEngine, "deposit.refund", lotID, "deposit_lot", false, fmt.Sprintf("lot is %s", lot.Status))
		return fmt.Errorf("%w: lot %s is %s", domain.ErrNotRefundable, lotID, lot.Status)
	}

	lot, err := uc.lotRepo.GetLotByID(lotID)
	if err != nil {
		return err
	}
	publishEvent(uc.publisher, kafka.SettlementEvent{
		Kind:       kafka.EventDepositRefunded,
		SellerID:   lot.SellerID,
		ResourceID: lot.ID,
		Amount:     lot.Balance,
		Currency:   lot.Currency,
		Status:     string(lot.Status),
	})
	recordAudit(uc.audit, actorEngine, "deposit.refund", lotID, "deposit_lot", true, "")
	return nil
}

func (uc *DefaultDepositUsecase) GetLotsBySellerID(sellerID string) ([]*domain.DepositLot, error) {
	return uc.lotRepo.GetLotsBySellerID(sellerID)
}
