package usecase

import (
	"fmt"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
	debtdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/debt"
	"github.com/google/uuid"
)

type DebtUsecase interface {
	CreateDebt(input *debtdto.CreateDebtInput) (string, error)
	MarkCollected(debtID string) error
	MarkPaid(debtID string) error
	GetDebtsBySellerID(sellerID string) ([]*domain.SellerDebt, error)
}

type DefaultDebtUsecase struct {
	debtRepo  domain.DebtRepository
	refunds   domain.RefundDirectory
	publisher EventPublisher
	audit     domain.AuditLogger
}

func NewDefaultDebtUsecase(
	debtRepo domain.DebtRepository,
	refunds domain.RefundDirectory,
	publisher EventPublisher,
	audit domain.AuditLogger,
) *DefaultDebtUsecase {
	return &DefaultDebtUsecase{
		debtRepo:  debtRepo,
		refunds:   refunds,
		publisher: publisher,
		audit:     audit,
	}
}

// CreateDebt registers money the platform advanced on the seller's behalf.
// Pure creation: collection happens via the deduction engine or a direct
// seller payment, never here.
func (uc *DefaultDebtUsecase) CreateDebt(input *debtdto.CreateDebtInput) (string, error) {
	if input.SellerID == "" {
		return "", fmt.Errorf("%w: seller id is required", domain.ErrValidation)
	}
	if input.RefundID == "" {
		return "", fmt.Errorf("%w: refund id is required", domain.ErrValidation)
	}
	if input.Amount <= 0 {
		return "", fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	refund, err := uc.refunds.GetRefund(input.RefundID)
	if err != nil {
		return "", fmt.Errorf("failed to look up refund %s: %w", input.RefundID, err)
	}
	if input.Amount > refund.Amount {
		return "", fmt.Errorf("%w: %.2f > %.2f", domain.ErrDebtExceedsRefund, input.Amount, refund.Amount)
	}

	debt := domain.SellerDebt{
		ID:        uuid.New().String(),
		SellerID:  input.SellerID,
		OrderID:   input.OrderID,
		DisputeID: input.DisputeID,
		RefundID:  input.RefundID,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Reason:    input.Reason,
		Status:    domain.DebtPending,
	}
	if err := uc.debtRepo.CreateDebt(&debt); err != nil {
		recordAudit(uc.audit, actorEngine, "debt.create", debt.ID, "seller_debt", false, err.Error())
		return "", err
	}

	publishEvent(uc.publisher, kafka.SettlementEvent{
		Kind:       kafka.EventDebtCreated,
		SellerID:   debt.SellerID,
		ResourceID: debt.ID,
		Amount:     debt.Amount,
		Currency:   debt.Currency,
		Reason:     debt.Reason,
	})
	recordAudit(uc.audit, actorEngine, "debt.create", debt.ID, "seller_debt", true, "")

	return debt.ID, nil
}

// MarkCollected - the debt amount was recovered from deposit or wages.
func (uc *DefaultDebtUsecase) MarkCollected(debtID string) error {
	return uc.transition(debtID, domain.DebtCollected, "debt.mark_collected")
}

// MarkPaid - the seller settled the debt with a direct payment.
func (uc *DefaultDebtUsecase) MarkPaid(debtID string) error {
	return uc.transition(debtID, domain.DebtPaid, "debt.mark_paid")
}

func (uc *DefaultDebtUsecase) transition(debtID string, to domain.DebtStatus, action string) error {
	moved, err := uc.debtRepo.UpdateDebtStatusCAS(debtID, domain.DebtPending, to)
	if err != nil {
		return err
	}
	if !moved {
		debt, err := uc.debtRepo.GetDebtByID(debtID)
		if err != nil {
			return err
		}
		recordAudit(uc.audit, actorEngine, action, debtID, "seller_debt", false, fmt.Sprintf("debt is %s", debt.Status))
		return fmt.Errorf("%w: debt %s is %s, expected %s", domain.ErrInvalidStateTransition, debtID, debt.Status, domain.DebtPending)
	}
	recordAudit(uc.audit, actorEngine, action, debtID, "seller_debt", true, "")
	return nil
}

func (uc *DefaultDebtUsecase) GetDebtsBySellerID(sellerID string) ([]*domain.SellerDebt, error) {
	return uc.debtRepo.GetDebtsBySellerID(sellerID)
}
