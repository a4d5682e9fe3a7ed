package repository

import (
	"errors"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultDebtRepository struct {
	db *gorm.DB
}

func NewDefaultDebtRepository(db *gorm.DB) *DefaultDebtRepository {
	return &DefaultDebtRepository{db: db}
}

func (r *DefaultDebtRepository) CreateDebt(debt *domain.SellerDebt) error {
	debtModel := mappers.ToGORMDebt(debt)
	if err := r.db.Create(&debtModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultDebtRepository) GetDebtByID(debtID string) (*domain.SellerDebt, error) {
	var debtModel models.SellerDebtModel
	if err := r.db.Model(&models.SellerDebtModel{}).Where("id = ?", debtID).First(&debtModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDebt(&debtModel), nil
}

func (r *DefaultDebtRepository) GetDebtsBySellerID(sellerID string) ([]*domain.SellerDebt, error) {
	var debtModels []models.SellerDebtModel
	if err := r.db.Model(&models.SellerDebtModel{}).
		Where("seller_id = ?", sellerID).
		Order("created_at ASC").
		Find(&debtModels).Error; err != nil {
		return nil, err
	}
	debts := make([]*domain.SellerDebt, len(debtModels))
	for i, debtModel := range debtModels {
		debts[i] = mappers.ToDomainDebt(&debtModel)
	}

	return debts, nil
}

func (r *DefaultDebtRepository) ExistsByRefundID(refundID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SellerDebtModel{}).
		Where("refund_id = ?", refundID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DefaultDebtRepository) UpdateDebtStatusCAS(debtID string, from, to domain.DebtStatus) (bool, error) {
	result := r.db.Model(&models.SellerDebtModel{}).
		Where("id = ? AND status = ?", debtID, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
