package repositories

import (
	"context"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

type AuditRepository interface {
	Create(ctx context.Context, tx *gorm.DB, entry *AuditLog) error
	GetByEntity(ctx context.Context, tx *gorm.DB, entity string, entityID int) ([]*AuditLog, error)
}

type auditRepository struct{}

func NewAuditRepository() AuditRepository {
	return &auditRepository{}
}

func (r *auditRepository) Create(ctx context.Context, tx *gorm.DB, entry *AuditLog) error {
	log := logger.NewWithContext(ctx, "auditRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(entry).Error; err != nil {
		return log.Err("failed to create audit entry", err, "action", entry.Action)
	}

	return nil
}

func (r *auditRepository) GetByEntity(
	ctx context.Context,
	tx *gorm.DB,
	entity string,
	entityID int,
) ([]*AuditLog, error) {
	log := logger.NewWithContext(ctx, "auditRepository").Function("GetByEntity")

	var entries []*AuditLog
	if err := tx.WithContext(ctx).
		Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, log.Err("failed to get audit entries", err, "entity", entity)
	}

	return entries, nil
}
