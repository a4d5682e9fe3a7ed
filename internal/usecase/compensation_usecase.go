package usecase

import (
	"fmt"
	"log"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
	compensationdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/compensation"
	debtdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/debt"
	deductiondto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/deduction"
	"github.com/google/uuid"
)

type CompensationUsecase interface {
	DetectNeeded(limit int) ([]*domain.PaymentCompensation, error)
	Process(compensationID string) (*compensationdto.ProcessOutput, error)
	// ProcessPending picks up NEEDED compensations, including ones left over
	// from previous runs, and processes each independently.
	ProcessPending(limit int) (processed int, failed int, err error)
}

type DefaultCompensationUsecase struct {
	compensationRepo  domain.CompensationRepository
	transferRepo      domain.TransferRepository
	debtRepo          domain.DebtRepository
	refunds           domain.RefundDirectory
	debtUsecase       DebtUsecase
	deductionUsecase  DeductionUsecase
	publisher         EventPublisher
	audit             domain.AuditLogger
}

func NewDefaultCompensationUsecase(
	compensationRepo domain.CompensationRepository,
	transferRepo domain.TransferRepository,
	debtRepo domain.DebtRepository,
	refunds domain.RefundDirectory,
	debtUsecase DebtUsecase,
	deductionUsecase DeductionUsecase,
	publisher EventPublisher,
	audit domain.AuditLogger,
) *DefaultCompensationUsecase {
	return &DefaultCompensationUsecase{
		compensationRepo: compensationRepo,
		transferRepo:     transferRepo,
		debtRepo:         debtRepo,
		refunds:          refunds,
		debtUsecase:      debtUsecase,
		deductionUsecase: deductionUsecase,
		publisher:        publisher,
		audit:            audit,
	}
}

// DetectNeeded scans two shortfall sources, bounded by limit per source:
// succeeded transfers whose settled amount exceeds the requested amount, and
// platform-advanced refunds that never produced a seller debt. Detection is
// idempotent: compensations are unique per related transfer/refund id.
func (uc *DefaultCompensationUsecase) DetectNeeded(limit int) ([]*domain.PaymentCompensation, error) {
	detected := make([]*domain.PaymentCompensation, 0)

	mismatches, err := uc.transferRepo.FindSettledMismatch(limit)
	if err != nil {
		return nil, err
	}
	for _, transfer := range mismatches {
		excess := transfer.SettledAmount - transfer.Amount
		compensation := &domain.PaymentCompensation{
			ID:        uuid.New().String(),
			RelatedID: transfer.ID,
			Source:    domain.CompensationFromTransfer,
			SellerID:  transfer.SellerID,
			Amount:    excess,
			Currency:  transfer.Currency,
			Status:    domain.CompensationNeeded,
			CreatedAt: time.Now(),
		}
		created, err := uc.compensationRepo.CreateIfAbsent(compensation)
		if err != nil {
			return nil, err
		}
		if created {
			detected = append(detected, compensation)
		}
	}

	advanced, err := uc.refunds.ListAdvanced(limit)
	if err != nil {
		return nil, err
	}
	for _, refund := range advanced {
		exists, err := uc.debtRepo.ExistsByRefundID(refund.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		compensation := &domain.PaymentCompensation{
			ID:        uuid.New().String(),
			RelatedID: refund.ID,
			Source:    domain.CompensationFromRefund,
			SellerID:  refund.SellerID,
			Amount:    refund.Amount,
			Currency:  refund.Currency,
			Status:    domain.CompensationNeeded,
			CreatedAt: time.Now(),
		}
		created, err := uc.compensationRepo.CreateIfAbsent(compensation)
		if err != nil {
			return nil, err
		}
		if created {
			detected = append(detected, compensation)
		}
	}

	return detected, nil
}

// Process resolves a single detected shortfall. The NEEDED -> PROCESSING
// guard makes concurrent or repeated processing of the same compensation
// impossible.
func (uc *DefaultCompensationUsecase) Process(compensationID string) (*compensationdto.ProcessOutput, error) {
	compensation, err := uc.compensationRepo.GetCompensationByID(compensationID)
	if err != nil {
		return nil, err
	}

	moved, err := uc.compensationRepo.UpdateCompensationStatusCAS(compensationID, domain.CompensationNeeded, domain.CompensationProcessing, time.Now())
	if err != nil {
		return nil, err
	}
	if !moved {
		recordAudit(uc.audit, actorEngine, "compensation.process", compensationID, "payment_compensation", false, fmt.Sprintf("compensation is %s", compensation.Status))
		return nil, fmt.Errorf("%w: compensation %s is %s, expected %s", domain.ErrInvalidStateTransition, compensationID, compensation.Status, domain.CompensationNeeded)
	}

	debtID, procErr := uc.settle(compensation)
	if procErr != nil {
		if _, err := uc.compensationRepo.UpdateCompensationStatusCAS(compensationID, domain.CompensationProcessing, domain.CompensationFailed, time.Now()); err != nil {
			log.Printf("Failed to mark compensation %s failed: %v\n", compensationID, err)
		}
		recordAudit(uc.audit, actorEngine, "compensation.process", compensationID, "payment_compensation", false, procErr.Error())
		return &compensationdto.ProcessOutput{Status: string(domain.CompensationFailed)}, procErr
	}

	if _, err := uc.compensationRepo.UpdateCompensationStatusCAS(compensationID, domain.CompensationProcessing, domain.CompensationResolved, time.Now()); err != nil {
		return nil, err
	}
	publishEvent(uc.publisher, kafka.SettlementEvent{
		Kind:       kafka.EventCompensationDone,
		SellerID:   compensation.SellerID,
		ResourceID: compensation.ID,
		Amount:     compensation.Amount,
		Currency:   compensation.Currency,
	})
	recordAudit(uc.audit, actorEngine, "compensation.process", compensationID, "payment_compensation", true, "")

	return &compensationdto.ProcessOutput{
		Status: string(domain.CompensationResolved),
		DebtID: debtID,
	}, nil
}

func (uc *DefaultCompensationUsecase) ProcessPending(limit int) (int, int, error) {
	pending, err := uc.compensationRepo.FindByStatus(domain.CompensationNeeded, limit)
	if err != nil {
		return 0, 0, err
	}

	processed, failed := 0, 0
	for _, compensation := range pending {
		if _, err := uc.Process(compensation.ID); err != nil {
			log.Printf("Failed to process compensation %s: %v\n", compensation.ID, err)
			failed++
			continue
		}
		processed++
	}
	return processed, failed, nil
}

func (uc *DefaultCompensationUsecase) settle(compensation *domain.PaymentCompensation) (string, error) {
	switch compensation.Source {
	case domain.CompensationFromRefund:
		refund, err := uc.refunds.GetRefund(compensation.RelatedID)
		if err != nil {
			return "", err
		}
		debtID, err := uc.debtUsecase.CreateDebt(&debtdto.CreateDebtInput{
			SellerID: compensation.SellerID,
			OrderID:  refund.OrderID,
			RefundID: refund.ID,
			Amount:   compensation.Amount,
			Currency: compensation.Currency,
			Reason:   "platform-advanced refund",
		})
		if err != nil {
			return "", err
		}

		result, err := uc.deductionUsecase.Deduct(&deductiondto.DeductInput{
			SellerID:    compensation.SellerID,
			Amount:      compensation.Amount,
			Currency:    compensation.Currency,
			Reason:      "collection of platform-advanced refund",
			RelatedID:   debtID,
			RelatedType: "seller_debt",
		})
		if err != nil {
			return debtID, err
		}
		if result.DeductedAmount >= result.RequestedAmount {
			if err := uc.debtUsecase.MarkCollected(debtID); err != nil {
				return debtID, err
			}
		}
		// on shortfall the debt stays PENDING until the seller tops up the
		// deposit or pays directly
		return debtID, nil

	case domain.CompensationFromTransfer:
		_, err := uc.deductionUsecase.Deduct(&deductiondto.DeductInput{
			SellerID:    compensation.SellerID,
			Amount:      compensation.Amount,
			Currency:    compensation.Currency,
			Reason:      "recovery of transfer over-settlement",
			RelatedID:   compensation.RelatedID,
			RelatedType: "transfer_record",
		})
		return "", err

	default:
		return "", fmt.Errorf("%w: unknown compensation source %q", domain.ErrValidation, compensation.Source)
	}
}
