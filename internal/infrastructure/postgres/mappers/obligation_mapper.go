package mappers

import (
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMObligation(obligation *domain.CommissionObligation) *models.CommissionObligationModel {
	return &models.CommissionObligationModel{
		ID:       obligation.ID,
		SellerID: obligation.SellerID,
		OrderID:  obligation.OrderID,
		Amount:   obligation.Amount,
		Currency: obligation.Currency,
		DueDate:  obligation.DueDate,
		Status:   string(obligation.Status),
	}
}

func ToDomainObligation(model *models.CommissionObligationModel) *domain.CommissionObligation {
	return &domain.CommissionObligation{
		ID:       model.ID,
		SellerID: model.SellerID,
		OrderID:  model.OrderID,
		Amount:   model.Amount,
		Currency: model.Currency,
		DueDate:  model.DueDate,
		Status:   domain.ObligationStatus(model.Status),
	}
}
