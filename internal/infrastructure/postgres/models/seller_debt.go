package models

import (
	"time"
)

type SellerDebtModel struct {
	ID        string `gorm:"primaryKey"`
	SellerID  string `gorm:"index"`
	OrderID   string
	DisputeID *string
	RefundID  string `gorm:"index"`
	Amount    float64
	Currency  string
	Reason    string
	Status    string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
