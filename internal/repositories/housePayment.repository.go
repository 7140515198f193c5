package repositories

import (
	"context"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

type HousePaymentRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*HousePayment, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*HousePayment, error)
	Create(ctx context.Context, tx *gorm.DB, payment *HousePayment) error
	CreateBatch(ctx context.Context, tx *gorm.DB, payments []*HousePayment) error
	Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type housePaymentRepository struct{}

func NewHousePaymentRepository() HousePaymentRepository {
	return &housePaymentRepository{}
}

func (r *housePaymentRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*HousePayment, error) {
	log := logger.NewWithContext(ctx, "housePaymentRepository").Function("GetAll")

	var payments []*HousePayment
	if err := tx.WithContext(ctx).
		Preload("OccupantHistory").
		Preload("OccupantHistory.Resident").
		Preload("OccupantHistory.House").
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return nil, log.Err("failed to get house payments", err)
	}

	return payments, nil
}

func (r *housePaymentRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (*HousePayment, error) {
	log := logger.NewWithContext(ctx, "housePaymentRepository").Function("GetByID")

	var payment HousePayment
	if err := tx.WithContext(ctx).
		Preload("OccupantHistory").
		Preload("OccupantHistory.Resident").
		Preload("OccupantHistory.House").
		First(&payment, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get house payment", err, "paymentID", id)
	}

	return &payment, nil
}

func (r *housePaymentRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	payment *HousePayment,
) error {
	log := logger.NewWithContext(ctx, "housePaymentRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(payment).Error; err != nil {
		return log.Err(
			"failed to create house payment",
			err,
			"occupancyID", payment.OccupantHistoryID,
		)
	}

	return nil
}

// CreateBatch inserts a generated installment series in one statement so a
// single bad row fails the whole series.
func (r *housePaymentRepository) CreateBatch(
	ctx context.Context,
	tx *gorm.DB,
	payments []*HousePayment,
) error {
	log := logger.NewWithContext(ctx, "housePaymentRepository").Function("CreateBatch")

	if err := tx.WithContext(ctx).Create(payments).Error; err != nil {
		return log.Err("failed to create house payment batch", err, "count", len(payments))
	}

	return nil
}

func (r *housePaymentRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	updates map[string]any,
) error {
	log := logger.NewWithContext(ctx, "housePaymentRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&HousePayment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update house payment", result.Error, "paymentID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *housePaymentRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "housePaymentRepository").Function("Delete")

	result := tx.WithContext(ctx).Delete(&HousePayment{}, id)
	if result.Error != nil {
		return log.Err("failed to delete house payment", result.Error, "paymentID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
