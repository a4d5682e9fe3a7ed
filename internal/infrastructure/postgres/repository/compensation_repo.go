package repository

import (
	"errors"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCompensationRepository struct {
	db *gorm.DB
}

func NewDefaultCompensationRepository(db *gorm.DB) *DefaultCompensationRepository {
	return &DefaultCompensationRepository{db: db}
}

// CreateIfAbsent relies on the unique index on related_id: a re-detection of
// the same transfer/refund is a no-op.
func (r *DefaultCompensationRepository) CreateIfAbsent(compensation *domain.PaymentCompensation) (bool, error) {
	compensationModel := mappers.ToGORMCompensation(compensation)
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "related_id"}},
		DoNothing: true,
	}).Create(&compensationModel)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultCompensationRepository) GetCompensationByID(compensationID string) (*domain.PaymentCompensation, error) {
	var compensationModel models.PaymentCompensationModel
	if err := r.db.Model(&models.PaymentCompensationModel{}).Where("id = ?", compensationID).First(&compensationModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainCompensation(&compensationModel), nil
}

func (r *DefaultCompensationRepository) FindByStatus(status domain.CompensationStatus, limit int) ([]*domain.PaymentCompensation, error) {
	var compensationModels []models.PaymentCompensationModel
	if err := r.db.Model(&models.PaymentCompensationModel{}).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Limit(limit).
		Find(&compensationModels).Error; err != nil {
		return nil, err
	}
	compensations := make([]*domain.PaymentCompensation, len(compensationModels))
	for i, compensationModel := range compensationModels {
		compensations[i] = mappers.ToDomainCompensation(&compensationModel)
	}

	return compensations, nil
}

func (r *DefaultCompensationRepository) UpdateCompensationStatusCAS(compensationID string, from, to domain.CompensationStatus, at time.Time) (bool, error) {
	updates := map[string]interface{}{"status": string(to)}
	if to == domain.CompensationResolved || to == domain.CompensationFailed {
		updates["resolved_at"] = at
	}

	result := r.db.Model(&models.PaymentCompensationModel{}).
		Where("id = ? AND status = ?", compensationID, string(from)).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
