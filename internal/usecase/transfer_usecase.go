package usecase

import (
	"fmt"
	"log"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/kafka"
	transferdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/transfer"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type TransferUsecase interface {
	CreatePayout(input *transferdto.CreatePayoutInput) (*domain.TransferRecord, error)
	Retry(transferID string) error
	RetryBatch(limit int) (*transferdto.RetryBatchOutput, error)
}

type DefaultTransferUsecase struct {
	transferRepo domain.TransferRepository
	provider     domain.PaymentProvider
	publisher    EventPublisher
	audit        domain.AuditLogger
}

func NewDefaultTransferUsecase(
	transferRepo domain.TransferRepository,
	provider domain.PaymentProvider,
	publisher EventPublisher,
	audit domain.AuditLogger,
) *DefaultTransferUsecase {
	return &DefaultTransferUsecase{
		transferRepo: transferRepo,
		provider:     provider,
		publisher:    publisher,
		audit:        audit,
	}
}

// CreatePayout mints the transfer's idempotency key and performs the first
// provider attempt. The key is stored with the record; every retry reuses it.
func (uc *DefaultTransferUsecase) CreatePayout(input *transferdto.CreatePayoutInput) (*domain.TransferRecord, error) {
	if input.SellerID == "" {
		return nil, fmt.Errorf("%w: seller id is required", domain.ErrValidation)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if input.Currency == "" {
		return nil, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}

	keyGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	transfer := domain.TransferRecord{
		ID:             uuid.New().String(),
		SellerID:       input.SellerID,
		Amount:         input.Amount,
		Currency:       input.Currency,
		IdempotencyKey: keyGenerator(),
		Status:         domain.TransferPending,
	}
	if err := uc.transferRepo.CreateTransfer(&transfer); err != nil {
		return nil, err
	}

	if err := uc.execute(&transfer); err != nil {
		return &transfer, err
	}
	return &transfer, nil
}

// Retry re-attempts a failed transfer with the original idempotency key, so
// a provider that succeeded on a prior attempt but failed to acknowledge
// will deduplicate rather than pay twice.
func (uc *DefaultTransferUsecase) Retry(transferID string) error {
	transfer, err := uc.transferRepo.GetTransferByID(transferID)
	if err != nil {
		return err
	}

	moved, err := uc.transferRepo.UpdateTransferStatusCAS(transferID, domain.TransferFailed, domain.TransferPending)
	if err != nil {
		return err
	}
	if !moved {
		recordAudit(uc.audit, actorEngine, "transfer.retry", transferID, "transfer_record", false, fmt.Sprintf("transfer is %s", transfer.Status))
		return fmt.Errorf("%w: transfer %s is %s, expected %s", domain.ErrInvalidStateTransition, transferID, transfer.Status, domain.TransferFailed)
	}

	return uc.execute(transfer)
}

// RetryBatch retries up to limit failed transfers. Individual failures are
// counted, never abort the batch.
func (uc *DefaultTransferUsecase) RetryBatch(limit int) (*transferdto.RetryBatchOutput, error) {
	failed, err := uc.transferRepo.FindFailed(limit)
	if err != nil {
		return nil, err
	}

	out := &transferdto.RetryBatchOutput{}
	for _, transfer := range failed {
		if err := uc.Retry(transfer.ID); err != nil {
			log.Printf("Transfer retry failed for %s: %v\n", transfer.ID, err)
			out.FailedCount++
			continue
		}
		out.SucceededCount++
	}

	return out, nil
}

func (uc *DefaultTransferUsecase) execute(transfer *domain.TransferRecord) error {
	result, err := uc.provider.ExecuteTransfer(domain.TransferRequest{
		TransferID:     transfer.ID,
		SellerID:       transfer.SellerID,
		Amount:         transfer.Amount,
		Currency:       transfer.Currency,
		IdempotencyKey: transfer.IdempotencyKey,
	})
	if err != nil {
		if recordErr := uc.transferRepo.RecordAttempt(transfer.ID, domain.TransferFailed, "", 0, time.Now()); recordErr != nil {
			log.Printf("Failed to record transfer attempt for %s: %v\n", transfer.ID, recordErr)
		}
		recordAudit(uc.audit, actorEngine, "transfer.execute", transfer.ID, "transfer_record", false, err.Error())
		return err
	}

	if err := uc.transferRepo.RecordAttempt(transfer.ID, domain.TransferSucceeded, result.ProviderRef, result.SettledAmount, time.Now()); err != nil {
		return err
	}
	publishEvent(uc.publisher, kafka.SettlementEvent{
		Kind:       kafka.EventTransferRetried,
		SellerID:   transfer.SellerID,
		ResourceID: transfer.ID,
		Amount:     transfer.Amount,
		Currency:   transfer.Currency,
		Status:     string(domain.TransferSucceeded),
	})
	recordAudit(uc.audit, actorEngine, "transfer.execute", transfer.ID, "transfer_record", true, "")
	return nil
}
