package repositories

import (
	"context"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

type SpendingRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Spending, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Spending, error)
	Create(ctx context.Context, tx *gorm.DB, spending *Spending) error
	Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type spendingRepository struct{}

func NewSpendingRepository() SpendingRepository {
	return &spendingRepository{}
}

func (r *spendingRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Spending, error) {
	log := logger.NewWithContext(ctx, "spendingRepository").Function("GetAll")

	var spendings []*Spending
	if err := tx.WithContext(ctx).
		Preload("SpendingType").
		Order("date DESC").
		Find(&spendings).Error; err != nil {
		return nil, log.Err("failed to get spendings", err)
	}

	return spendings, nil
}

func (r *spendingRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Spending, error) {
	log := logger.NewWithContext(ctx, "spendingRepository").Function("GetByID")

	var spending Spending
	if err := tx.WithContext(ctx).
		Preload("SpendingType").
		First(&spending, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get spending", err, "spendingID", id)
	}

	return &spending, nil
}

func (r *spendingRepository) Create(ctx context.Context, tx *gorm.DB, spending *Spending) error {
	log := logger.NewWithContext(ctx, "spendingRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(spending).Error; err != nil {
		return log.Err("failed to create spending", err, "spendingTypeID", spending.SpendingTypeID)
	}

	return nil
}

func (r *spendingRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := logger.NewWithContext(ctx, "spendingRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&Spending{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update spending", result.Error, "spendingID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *spendingRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "spendingRepository").Function("Delete")

	result := tx.WithContext(ctx).Delete(&Spending{}, id)
	if result.Error != nil {
		return log.Err("failed to delete spending", result.Error, "spendingID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
