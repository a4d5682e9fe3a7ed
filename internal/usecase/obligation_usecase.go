package usecase

import (
	"fmt"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	obligationdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/obligation"
	"github.com/google/uuid"
)

type ObligationUsecase interface {
	CreateObligation(input *obligationdto.CreateObligationInput) (*domain.CommissionObligation, error)
	FindOverdue(now time.Time) ([]*domain.CommissionObligation, error)
	MarkPaid(obligationID string) error
	SendDueReminders(now time.Time, within time.Duration) (int, error)
}

type DefaultObligationUsecase struct {
	obligationRepo domain.ObligationRepository
	penaltyUsecase PenaltyUsecase
	notifier       domain.SellerNotifier
	audit          domain.AuditLogger
}

func NewDefaultObligationUsecase(
	obligationRepo domain.ObligationRepository,
	penaltyUsecase PenaltyUsecase,
	notifier domain.SellerNotifier,
	audit domain.AuditLogger,
) *DefaultObligationUsecase {
	return &DefaultObligationUsecase{
		obligationRepo: obligationRepo,
		penaltyUsecase: penaltyUsecase,
		notifier:       notifier,
		audit:          audit,
	}
}

func (uc *DefaultObligationUsecase) CreateObligation(input *obligationdto.CreateObligationInput) (*domain.CommissionObligation, error) {
	if input.SellerID == "" {
		return nil, fmt.Errorf("%w: seller id is required", domain.ErrValidation)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if input.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", domain.ErrValidation)
	}

	obligation := domain.CommissionObligation{
		ID:       uuid.New().String(),
		SellerID: input.SellerID,
		OrderID:  input.OrderID,
		Amount:   input.Amount,
		Currency: input.Currency,
		DueDate:  input.DueDate,
		Status:   domain.ObligationPending,
	}
	if err := uc.obligationRepo.CreateObligation(&obligation); err != nil {
		return nil, err
	}
	recordAudit(uc.audit, actorEngine, "obligation.create", obligation.ID, "commission_obligation", true, "")

	return &obligation, nil
}

func (uc *DefaultObligationUsecase) FindOverdue(now time.Time) ([]*domain.CommissionObligation, error) {
	return uc.obligationRepo.FindOverdue(now)
}

// MarkPaid settles the obligation. Paying an overdue obligation resolves the
// penalties it produced. Repeating the call once the obligation is PAID is a
// no-op.
func (uc *DefaultObligationUsecase) MarkPaid(obligationID string) error {
	previous, moved, err := uc.obligationRepo.MarkPaidCAS(obligationID)
	if err != nil {
		return err
	}
	if !moved {
		// already PAID
		return nil
	}
	recordAudit(uc.audit, actorEngine, "obligation.mark_paid", obligationID, "commission_obligation", true, "")

	if previous != domain.ObligationOverdue {
		return nil
	}

	obligation, err := uc.obligationRepo.GetObligationByID(obligationID)
	if err != nil {
		return err
	}
	if _, err := uc.penaltyUsecase.ResolvePenalty(obligation.SellerID, obligationID); err != nil {
		return fmt.Errorf("failed to resolve penalties for obligation %s: %w", obligationID, err)
	}
	return nil
}

// SendDueReminders notifies sellers about obligations coming due.
func (uc *DefaultObligationUsecase) SendDueReminders(now time.Time, within time.Duration) (int, error) {
	obligations, err := uc.obligationRepo.FindDueSoon(now, within)
	if err != nil {
		return 0, err
	}

	for _, obligation := range obligations {
		uc.notifier.NotifySeller(domain.Notification{
			SellerID: obligation.SellerID,
			Kind:     "COMMISSION_DUE",
			Message:  fmt.Sprintf("Commission of %.2f %s for order %s is due on %s", obligation.Amount, obligation.Currency, obligation.OrderID, obligation.DueDate.Format("2006-01-02")),
			Amount:   obligation.Amount,
			Currency: obligation.Currency,
		})
	}

	return len(obligations), nil
}
