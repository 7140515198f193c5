package repositories

import (
	"context"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

type DuePaymentRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*DuePayment, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*DuePayment, error)
	CreateBatch(ctx context.Context, tx *gorm.DB, payments []*DuePayment) error
	Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type duePaymentRepository struct{}

func NewDuePaymentRepository() DuePaymentRepository {
	return &duePaymentRepository{}
}

func (r *duePaymentRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*DuePayment, error) {
	log := logger.NewWithContext(ctx, "duePaymentRepository").Function("GetAll")

	var payments []*DuePayment
	if err := tx.WithContext(ctx).
		Preload("DueType").
		Preload("Resident").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, log.Err("failed to get due payments", err)
	}

	return payments, nil
}

func (r *duePaymentRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (*DuePayment, error) {
	log := logger.NewWithContext(ctx, "duePaymentRepository").Function("GetByID")

	var payment DuePayment
	if err := tx.WithContext(ctx).
		Preload("DueType").
		Preload("Resident").
		First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get due payment", err, "paymentID", id)
	}

	return &payment, nil
}

func (r *duePaymentRepository) CreateBatch(
	ctx context.Context,
	tx *gorm.DB,
	payments []*DuePayment,
) error {
	log := logger.NewWithContext(ctx, "duePaymentRepository").Function("CreateBatch")

	if err := tx.WithContext(ctx).Create(payments).Error; err != nil {
		return log.Err("failed to create due payment batch", err, "count", len(payments))
	}

	return nil
}

func (r *duePaymentRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := logger.NewWithContext(ctx, "duePaymentRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&DuePayment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update due payment", result.Error, "paymentID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *duePaymentRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "duePaymentRepository").Function("Delete")

	result := tx.WithContext(ctx).Delete(&DuePayment{}, id)
	if result.Error != nil {
		return log.Err("failed to delete due payment", result.Error, "paymentID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
