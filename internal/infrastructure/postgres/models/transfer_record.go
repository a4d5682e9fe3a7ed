package models

import (
	"time"
)

type TransferRecordModel struct {
	ID             string `gorm:"primaryKey"`
	SellerID       string `gorm:"index"`
	Amount         float64
	SettledAmount  float64
	Currency       string
	IdempotencyKey string `gorm:"uniqueIndex"`
	ProviderRef    string
	Status         string `gorm:"index"`
	AttemptCount   int
	LastAttemptAt  *time.Time
	CreatedAt      time.Time
}
