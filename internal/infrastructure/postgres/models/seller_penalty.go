package models

import (
	"time"
)

type SellerPenaltyModel struct {
	ID           string `gorm:"primaryKey"`
	SellerID     string `gorm:"index"`
	ObligationID string `gorm:"index"`
	Tier         string
	Status       string `gorm:"index"`
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}
