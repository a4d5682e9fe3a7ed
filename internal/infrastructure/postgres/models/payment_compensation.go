package models

import (
	"time"
)

type PaymentCompensationModel struct {
	ID         string `gorm:"primaryKey"`
	RelatedID  string `gorm:"uniqueIndex"`
	Source     string
	SellerID   string `gorm:"index"`
	Amount     float64
	Currency   string
	Status     string `gorm:"index"`
	CreatedAt  time.Time
	ResolvedAt *time.Time
}
