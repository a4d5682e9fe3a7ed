package models

import (
	"time"
)

type AuditRecordModel struct {
	ID           uint `gorm:"primaryKey;autoIncrement"`
	Actor        string
	Action       string `gorm:"index"`
	ResourceID   string `gorm:"index"`
	ResourceType string
	Success      bool
	FailReason   string
	CreatedAt    time.Time
}
