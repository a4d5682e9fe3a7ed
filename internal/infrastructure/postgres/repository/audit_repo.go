package repository

import (
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAuditRepository struct {
	db *gorm.DB
}

func NewDefaultAuditRepository(db *gorm.DB) *DefaultAuditRepository {
	return &DefaultAuditRepository{db: db}
}

func (r *DefaultAuditRepository) Record(entry domain.AuditEntry) error {
	return r.db.Create(&models.AuditRecordModel{
		Actor:        entry.Actor,
		Action:       entry.Action,
		ResourceID:   entry.ResourceID,
		ResourceType: entry.ResourceType,
		Success:      entry.Success,
		FailReason:   entry.FailReason,
		CreatedAt:    entry.At,
	}).Error
}
