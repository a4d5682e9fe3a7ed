package mappers

import (
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMCompensation(compensation *domain.PaymentCompensation) *models.PaymentCompensationModel {
	return &models.PaymentCompensationModel{
		ID:         compensation.ID,
		RelatedID:  compensation.RelatedID,
		Source:     string(compensation.Source),
		SellerID:   compensation.SellerID,
		Amount:     compensation.Amount,
		Currency:   compensation.Currency,
		Status:     string(compensation.Status),
		CreatedAt:  compensation.CreatedAt,
		ResolvedAt: compensation.ResolvedAt,
	}
}

func ToDomainCompensation(model *models.PaymentCompensationModel) *domain.PaymentCompensation {
	return &domain.PaymentCompensation{
		ID:         model.ID,
		RelatedID:  model.RelatedID,
		Source:     domain.CompensationSource(model.Source),
		SellerID:   model.SellerID,
		Amount:     model.Amount,
		Currency:   model.Currency,
		Status:     domain.CompensationStatus(model.Status),
		CreatedAt:  model.CreatedAt,
		ResolvedAt: model.ResolvedAt,
	}
}
