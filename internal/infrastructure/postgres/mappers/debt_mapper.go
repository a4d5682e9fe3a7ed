package mappers

import (
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMDebt(debt *domain.SellerDebt) *models.SellerDebtModel {
	return &models.SellerDebtModel{
		ID:        debt.ID,
		SellerID:  debt.SellerID,
		OrderID:   debt.OrderID,
		DisputeID: debt.DisputeID,
		RefundID:  debt.RefundID,
		Amount:    debt.Amount,
		Currency:  debt.Currency,
		Reason:    debt.Reason,
		Status:    string(debt.Status),
	}
}

func ToDomainDebt(model *models.SellerDebtModel) *domain.SellerDebt {
	return &domain.SellerDebt{
		ID:        model.ID,
		SellerID:  model.SellerID,
		OrderID:   model.OrderID,
		DisputeID: model.DisputeID,
		RefundID:  model.RefundID,
		Amount:    model.Amount,
		Currency:  model.Currency,
		Reason:    model.Reason,
		Status:    domain.DebtStatus(model.Status),
	}
}
