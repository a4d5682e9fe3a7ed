package repository

import (
	"errors"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransferRepository struct {
	db *gorm.DB
}

func NewDefaultTransferRepository(db *gorm.DB) *DefaultTransferRepository {
	return &DefaultTransferRepository{db: db}
}

func (r *DefaultTransferRepository) CreateTransfer(transfer *domain.TransferRecord) error {
	transferModel := mappers.ToGORMTransfer(transfer)
	if err := r.db.Create(&transferModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultTransferRepository) GetTransferByID(transferID string) (*domain.TransferRecord, error) {
	var transferModel models.TransferRecordModel
	if err := r.db.Model(&models.TransferRecordModel{}).Where("id = ?", transferID).First(&transferModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainTransfer(&transferModel), nil
}

func (r *DefaultTransferRepository) FindFailed(limit int) ([]*domain.TransferRecord, error) {
	var transferModels []models.TransferRecordModel
	if err := r.db.Model(&models.TransferRecordModel{}).
		Where("status = ?", string(domain.TransferFailed)).
		Order("last_attempt_at ASC").
		Limit(limit).
		Find(&transferModels).Error; err != nil {
		return nil, err
	}

	return toDomainTransfers(transferModels), nil
}

func (r *DefaultTransferRepository) FindSettledMismatch(limit int) ([]*domain.TransferRecord, error) {
	var transferModels []models.TransferRecordModel
	if err := r.db.Model(&models.TransferRecordModel{}).
		Where("status = ?", string(domain.TransferSucceeded)).
		Where("settled_amount > amount").
		Order("last_attempt_at ASC").
		Limit(limit).
		Find(&transferModels).Error; err != nil {
		return nil, err
	}

	return toDomainTransfers(transferModels), nil
}

func (r *DefaultTransferRepository) UpdateTransferStatusCAS(transferID string, from, to domain.TransferStatus) (bool, error) {
	result := r.db.Model(&models.TransferRecordModel{}).
		Where("id = ? AND status = ?", transferID, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultTransferRepository) RecordAttempt(transferID string, status domain.TransferStatus, providerRef string, settledAmount float64, at time.Time) error {
	return r.db.Model(&models.TransferRecordModel{}).
		Where("id = ?", transferID).
		Updates(map[string]interface{}{
			"status":          string(status),
			"provider_ref":    providerRef,
			"settled_amount":  settledAmount,
			"attempt_count":   gorm.Expr("attempt_count + 1"),
			"last_attempt_at": at,
		}).Error
}

func toDomainTransfers(transferModels []models.TransferRecordModel) []*domain.TransferRecord {
	transfers := make([]*domain.TransferRecord, len(transferModels))
	for i, transferModel := range transferModels {
		transfers[i] = mappers.ToDomainTransfer(&transferModel)
	}
	return transfers
}
