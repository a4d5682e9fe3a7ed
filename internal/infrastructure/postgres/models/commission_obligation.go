package models

import (
	"time"
)

type CommissionObligationModel struct {
	ID        string `gorm:"primaryKey"`
	SellerID  string `gorm:"index"`
	OrderID   string
	Amount    float64
	Currency  string
	DueDate   time.Time `gorm:"index"`
	Status    string    `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
