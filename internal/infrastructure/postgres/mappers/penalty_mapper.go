package mappers

import (
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMPenalty(penalty *domain.SellerPenalty) *models.SellerPenaltyModel {
	return &models.SellerPenaltyModel{
		ID:           penalty.ID,
		SellerID:     penalty.SellerID,
		ObligationID: penalty.ObligationID,
		Tier:         string(penalty.Tier),
		Status:       string(penalty.Status),
		CreatedAt:    penalty.CreatedAt,
		ResolvedAt:   penalty.ResolvedAt,
	}
}

func ToDomainPenalty(model *models.SellerPenaltyModel) *domain.SellerPenalty {
	return &domain.SellerPenalty{
		ID:           model.ID,
		SellerID:     model.SellerID,
		ObligationID: model.ObligationID,
		Tier:         domain.PenaltyTier(model.Tier),
		Status:       domain.PenaltyStatus(model.Status),
		CreatedAt:    model.CreatedAt,
		ResolvedAt:   model.ResolvedAt,
	}
}
