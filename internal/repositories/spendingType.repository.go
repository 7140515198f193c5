package repositories

import (
	"context"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

type SpendingTypeRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*SpendingType, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*SpendingType, error)
	Create(ctx context.Context, tx *gorm.DB, spendingType *SpendingType) error
	Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type spendingTypeRepository struct{}

func NewSpendingTypeRepository() SpendingTypeRepository {
	return &spendingTypeRepository{}
}

func (r *spendingTypeRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*SpendingType, error) {
	log := logger.NewWithContext(ctx, "spendingTypeRepository").Function("GetAll")

	var spendingTypes []*SpendingType
	if err := tx.WithContext(ctx).
		Order("name ASC").
		Find(&spendingTypes).Error; err != nil {
		return nil, log.Err("failed to get spending types", err)
	}

	return spendingTypes, nil
}

func (r *spendingTypeRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (*SpendingType, error) {
	log := logger.NewWithContext(ctx, "spendingTypeRepository").Function("GetByID")

	var spendingType SpendingType
	if err := tx.WithContext(ctx).First(&spendingType, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get spending type", err, "spendingTypeID", id)
	}

	return &spendingType, nil
}

func (r *spendingTypeRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	spendingType *SpendingType,
) error {
	log := logger.NewWithContext(ctx, "spendingTypeRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(spendingType).Error; err != nil {
		return log.Err("failed to create spending type", err, "name", spendingType.Name)
	}

	return nil
}

func (r *spendingTypeRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := logger.NewWithContext(ctx, "spendingTypeRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&SpendingType{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update spending type", result.Error, "spendingTypeID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *spendingTypeRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "spendingTypeRepository").Function("Delete")

	result := tx.WithContext(ctx).Delete(&SpendingType{}, id)
	if result.Error != nil {
		return log.Err("failed to delete spending type", result.Error, "spendingTypeID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
