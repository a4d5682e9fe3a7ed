package repository

import (
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPenaltyRepository struct {
	db *gorm.DB
}

func NewDefaultPenaltyRepository(db *gorm.DB) *DefaultPenaltyRepository {
	return &DefaultPenaltyRepository{db: db}
}

func (r *DefaultPenaltyRepository) CreatePenalty(penalty *domain.SellerPenalty) error {
	penaltyModel := mappers.ToGORMPenalty(penalty)
	if err := r.db.Create(&penaltyModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultPenaltyRepository) CountActiveBySeller(sellerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.SellerPenaltyModel{}).
		Where("seller_id = ? AND status = ?", sellerID, string(domain.PenaltyActive)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultPenaltyRepository) GetActiveBySeller(sellerID string) ([]*domain.SellerPenalty, error) {
	var penaltyModels []models.SellerPenaltyModel
	if err := r.db.Model(&models.SellerPenaltyModel{}).
		Where("seller_id = ? AND status = ?", sellerID, string(domain.PenaltyActive)).
		Order("created_at ASC").
		Find(&penaltyModels).Error; err != nil {
		return nil, err
	}
	penalties := make([]*domain.SellerPenalty, len(penaltyModels))
	for i, penaltyModel := range penaltyModels {
		penalties[i] = mappers.ToDomainPenalty(&penaltyModel)
	}

	return penalties, nil
}

func (r *DefaultPenaltyRepository) HasPenaltyForObligation(obligationID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SellerPenaltyModel{}).
		Where("obligation_id = ?", obligationID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultPenaltyRepository) ResolveByObligation(sellerID, obligationID string, at time.Time) (int64, error) {
	result := r.db.Model(&models.SellerPenaltyModel{}).
		Where("seller_id = ? AND obligation_id = ? AND status = ?", sellerID, obligationID, string(domain.PenaltyActive)).
		Updates(map[string]interface{}{
			"status":      string(domain.PenaltyResolved),
			"resolved_at": at,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
