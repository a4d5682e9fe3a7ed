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

type DefaultDepositLotRepository struct {
	db *gorm.DB
}

func NewDefaultDepositLotRepository(db *gorm.DB) *DefaultDepositLotRepository {
	return &DefaultDepositLotRepository{db: db}
}

func (r *DefaultDepositLotRepository) CreateLot(lot *domain.DepositLot) error {
	lotModel := mappers.ToGORMDepositLot(lot)
	if err := r.db.Create(&lotModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultDepositLotRepository) GetLotByID(lotID string) (*domain.DepositLot, error) {
	var lotModel models.DepositLotModel
	if err := r.db.Model(&models.DepositLotModel{}).Where("id = ?", lotID).First(&lotModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainDepositLot(&lotModel), nil
}

func (r *DefaultDepositLotRepository) GetLotsBySellerID(sellerID string) ([]*domain.DepositLot, error) {
	var lotModels []models.DepositLotModel
	if err := r.db.Model(&models.DepositLotModel{}).
		Where("seller_id = ?", sellerID).
		Order("required_at ASC").
		Find(&lotModels).Error; err != nil {
		return nil, err
	}
	lots := make([]*domain.DepositLot, len(lotModels))
	for i, lotModel := range lotModels {
		lots[i] = mappers.ToDomainDepositLot(&lotModel)
	}

	return lots, nil
}

// UpdateLotStatusCAS guards the transition with the expected source status so
// a concurrent cron run or admin call cannot apply it twice.
func (r *DefaultDepositLotRepository) UpdateLotStatusCAS(lotID string, from, to domain.DepositLotStatus, at time.Time) (bool, error) {
	updates := map[string]interface{}{"status": string(to)}
	switch to {
	case domain.DepositHeld:
		updates["held_at"] = at
		// funds posted: the full required amount becomes deductible
		updates["balance"] = gorm.Expr("required_amount")
	case domain.DepositRefundable:
		updates["refundable_at"] = at
	case domain.DepositRefunded:
		updates["refunded_at"] = at
	}

	result := r.db.Model(&models.DepositLotModel{}).
		Where("id = ? AND status = ?", lotID, string(from)).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *DefaultDepositLotRepository) MatureLots(now time.Time, holdingPeriod time.Duration) (int64, error) {
	cutoff := now.Add(-holdingPeriod)
	result := r.db.Model(&models.DepositLotModel{}).
		Where("status = ? AND held_at <= ?", string(domain.DepositHeld), cutoff).
		Updates(map[string]interface{}{
			"status":        string(domain.DepositRefundable),
			"refundable_at": now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *DefaultDepositLotRepository) HeldBalance(sellerID string) (float64, error) {
	var balance float64
	err := r.db.Model(&models.DepositLotModel{}).
		Where("seller_id = ? AND status = ?", sellerID, string(domain.DepositHeld)).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// DeductFromHeld locks the seller's held lots for the whole selection and
// consumption sequence, so two concurrent deductions cannot both read the
// same pre-deduction balance.
func (r *DefaultDepositLotRepository) DeductFromHeld(sellerID string, amount float64) (float64, float64, error) {
	var deducted, remaining float64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var lotModels []models.DepositLotModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(&models.DepositLotModel{}).
			Where("seller_id = ? AND status = ? AND balance > 0", sellerID, string(domain.DepositHeld)).
			Order("held_at ASC").
			Find(&lotModels).Error; err != nil {
			return err
		}

		left := amount
		for i := range lotModels {
			if left <= 0 {
				break
			}
			take := lotModels[i].Balance
			if take > left {
				take = left
			}
			lotModels[i].Balance -= take
			left -= take
			deducted += take

			if err := tx.Model(&models.DepositLotModel{}).
				Where("id = ?", lotModels[i].ID).
				Update("balance", lotModels[i].Balance).Error; err != nil {
				return err
			}
		}

		for i := range lotModels {
			remaining += lotModels[i].Balance
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return deducted, remaining, nil
}
