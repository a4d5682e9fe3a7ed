package mappers

import (
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
)

func ToGORMDepositLot(lot *domain.DepositLot) *models.DepositLotModel {
	return &models.DepositLotModel{
		ID:             lot.ID,
		SellerID:       lot.SellerID,
		RequiredAmount: lot.RequiredAmount,
		Balance:        lot.Balance,
		Currency:       lot.Currency,
		Status:         string(lot.Status),
		RequiredAt:     lot.RequiredAt,
		HeldAt:         lot.HeldAt,
		RefundableAt:   lot.RefundableAt,
		RefundedAt:     lot.RefundedAt,
	}
}

func ToDomainDepositLot(model *models.DepositLotModel) *domain.DepositLot {
	return &domain.DepositLot{
		ID:             model.ID,
		SellerID:       model.SellerID,
		RequiredAmount: model.RequiredAmount,
		Balance:        model.Balance,
		Currency:       model.Currency,
		Status:         domain.DepositLotStatus(model.Status),
		RequiredAt:     model.RequiredAt,
		HeldAt:         model.HeldAt,
		RefundableAt:   model.RefundableAt,
		RefundedAt:     model.RefundedAt,
	}
}
