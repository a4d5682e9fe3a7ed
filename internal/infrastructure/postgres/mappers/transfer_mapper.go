package mappers

import (
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMTransfer(transfer *domain.TransferRecord) *models.TransferRecordModel {
	return &models.TransferRecordModel{
		ID:             transfer.ID,
		SellerID:       transfer.SellerID,
		Amount:         transfer.Amount,
		SettledAmount:  transfer.SettledAmount,
		Currency:       transfer.Currency,
		IdempotencyKey: transfer.IdempotencyKey,
		ProviderRef:    transfer.ProviderRef,
		Status:         string(transfer.Status),
		AttemptCount:   transfer.AttemptCount,
		LastAttemptAt:  transfer.LastAttemptAt,
	}
}

func ToDomainTransfer(model *models.TransferRecordModel) *domain.TransferRecord {
	return &domain.TransferRecord{
		ID:             model.ID,
		SellerID:       model.SellerID,
		Amount:         model.Amount,
		SettledAmount:  model.SettledAmount,
		Currency:       model.Currency,
		IdempotencyKey: model.IdempotencyKey,
		ProviderRef:    model.ProviderRef,
		Status:         domain.TransferStatus(model.Status),
		AttemptCount:   model.AttemptCount,
		LastAttemptAt:  model.LastAttemptAt,
	}
}
