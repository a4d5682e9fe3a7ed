package models

import (
	"time"
)

type DepositLotModel struct {
	ID             string `gorm:"primaryKey"`
	SellerID       string `gorm:"index"`
	RequiredAmount float64
	Balance        float64
	Currency       string
	Status         string `gorm:"index"`
	RequiredAt     time.Time
	HeldAt         *time.Time
	RefundableAt   *time.Time
	RefundedAt     *time.Time
}
