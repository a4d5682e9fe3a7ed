package repository

import (
	"errors"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultObligationRepository struct {
	db *gorm.DB
}

func NewDefaultObligationRepository(db *gorm.DB) *DefaultObligationRepository {
	return &DefaultObligationRepository{db: db}
}

func (r *DefaultObligationRepository) CreateObligation(obligation *domain.CommissionObligation) error {
	obligationModel := mappers.ToGORMObligation(obligation)
	if err := r.db.Create(&obligationModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultObligationRepository) GetObligationByID(obligationID string) (*domain.CommissionObligation, error) {
	var obligationModel models.CommissionObligationModel
	if err := r.db.Model(&models.CommissionObligationModel{}).Where("id = ?", obligationID).First(&obligationModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainObligation(&obligationModel), nil
}

func (r *DefaultObligationRepository) FindOverdue(now time.Time) ([]*domain.CommissionObligation, error) {
	var obligationModels []models.CommissionObligationModel
	if err := r.db.Model(&models.CommissionObligationModel{}).
		Where("status = ?", string(domain.ObligationPending)).
		Where("due_date < ?", now).
		Find(&obligationModels).Error; err != nil {
		return nil, err
	}

	return toDomainObligations(obligationModels), nil
}

func (r *DefaultObligationRepository) FindEscalatable(now time.Time) ([]*domain.CommissionObligation, error) {
	var obligationModels []models.CommissionObligationModel
	if err := r.db.Model(&models.CommissionObligationModel{}).
		Where("status IN ?", []string{string(domain.ObligationPending), string(domain.ObligationOverdue)}).
		Where("due_date < ?", now).
		Find(&obligationModels).Error; err != nil {
		return nil, err
	}

	return toDomainObligations(obligationModels), nil
}

func (r *DefaultObligationRepository) FindDueSoon(now time.Time, within time.Duration) ([]*domain.CommissionObligation, error) {
	var obligationModels []models.CommissionObligationModel
	if err := r.db.Model(&models.CommissionObligationModel{}).
		Where("status = ?", string(domain.ObligationPending)).
		Where("due_date >= ? AND due_date < ?", now, now.Add(within)).
		Find(&obligationModels).Error; err != nil {
		return nil, err
	}

	return toDomainObligations(obligationModels), nil
}

func (r *DefaultObligationRepository) MarkOverdueCAS(obligationID string) (bool, error) {
	result := r.db.Model(&models.CommissionObligationModel{}).
		Where("id = ? AND status = ?", obligationID, string(domain.ObligationPending)).
		Update("status", string(domain.ObligationOverdue))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkPaidCAS reads the current status inside a transaction and applies the
// guarded update so the caller learns whether the obligation was overdue at
// payment time (which triggers penalty resolution).
func (r *DefaultObligationRepository) MarkPaidCAS(obligationID string) (domain.ObligationStatus, bool, error) {
	var previous domain.ObligationStatus
	var moved bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var obligationModel models.CommissionObligationModel
		if err := tx.Model(&models.CommissionObligationModel{}).
			Where("id = ?", obligationID).
			First(&obligationModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		previous = domain.ObligationStatus(obligationModel.Status)
		if previous == domain.ObligationPaid {
			return nil
		}

		result := tx.Model(&models.CommissionObligationModel{}).
			Where("id = ? AND status = ?", obligationID, obligationModel.Status).
			Update("status", string(domain.ObligationPaid))
		if result.Error != nil {
			return result.Error
		}
		moved = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return "", false, err
	}

	return previous, moved, nil
}

func toDomainObligations(obligationModels []models.CommissionObligationModel) []*domain.CommissionObligation {
	obligations := make([]*domain.CommissionObligation, len(obligationModels))
	for i, obligationModel := range obligationModels {
		obligations[i] = mappers.ToDomainObligation(&obligationModel)
	}
	return obligations
}
