package repositories

import (
	"context"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

type DueTypeRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*DueType, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*DueType, error)
	Create(ctx context.Context, tx *gorm.DB, dueType *DueType) error
	Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type dueTypeRepository struct{}

func NewDueTypeRepository() DueTypeRepository {
	return &dueTypeRepository{}
}

func (r *dueTypeRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*DueType, error) {
	log := logger.NewWithContext(ctx, "dueTypeRepository").Function("GetAll")

	var dueTypes []*DueType
	if err := tx.WithContext(ctx).
		Order("name ASC").
		Find(&dueTypes).Error; err != nil {
		return nil, log.Err("failed to get due types", err)
	}

	return dueTypes, nil
}

func (r *dueTypeRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*DueType, error) {
	log := logger.NewWithContext(ctx, "dueTypeRepository").Function("GetByID")

	var dueType DueType
	if err := tx.WithContext(ctx).First(&dueType, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get due type", err, "dueTypeID", id)
	}

	return &dueType, nil
}

func (r *dueTypeRepository) Create(ctx context.Context, tx *gorm.DB, dueType *DueType) error {
	log := logger.NewWithContext(ctx, "dueTypeRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(dueType).Error; err != nil {
		return log.Err("failed to create due type", err, "name", dueType.Name)
	}

	return nil
}

func (r *dueTypeRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := logger.NewWithContext(ctx, "dueTypeRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&DueType{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update due type", result.Error, "dueTypeID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *dueTypeRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "dueTypeRepository").Function("Delete")

	result := tx.WithContext(ctx).Delete(&DueType{}, id)
	if result.Error != nil {
		return log.Err("failed to delete due type", result.Error, "dueTypeID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
