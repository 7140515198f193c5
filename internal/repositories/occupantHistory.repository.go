package repositories

import (
	"context"
	"time"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

type OccupantHistoryRepository interface {
	GetByHouse(ctx context.Context, tx *gorm.DB, houseID int) ([]*OccupantHistory, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*OccupantHistory, error)
	GetOpenByHouse(ctx context.Context, tx *gorm.DB, houseID int) (*OccupantHistory, error)
	GetOpenByHouseAndResident(ctx context.Context, tx *gorm.DB, houseID, residentID int) (*OccupantHistory, error)
	Create(ctx context.Context, tx *gorm.DB, history *OccupantHistory) error
	UpdateDates(ctx context.Context, tx *gorm.DB, id int, startDate time.Time, endDate *time.Time) error
	SetEndDate(ctx context.Context, tx *gorm.DB, id int, endDate time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
	DeletePaymentsByOccupancy(ctx context.Context, tx *gorm.DB, id int) error
}

type occupantHistoryRepository struct{}

func NewOccupantHistoryRepository() OccupantHistoryRepository {
	return &occupantHistoryRepository{}
}

func (r *occupantHistoryRepository) GetByHouse(
	ctx context.Context,
	tx *gorm.DB,
	houseID int,
) ([]*OccupantHistory, error) {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").Function("GetByHouse")

	var histories []*OccupantHistory
	if err := tx.WithContext(ctx).
		Preload("House").
		Preload("Resident").
		Preload("HousePayments").
		Where("house_id = ?", houseID).
		Order("created_at DESC").
		Find(&histories).Error; err != nil {
		return nil, log.Err("failed to get occupant histories", err, "houseID", houseID)
	}

	return histories, nil
}

func (r *occupantHistoryRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) (*OccupantHistory, error) {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").Function("GetByID")

	var history OccupantHistory
	if err := tx.WithContext(ctx).
		Preload("House").
		Preload("Resident").
		Preload("HousePayments").
		First(&history, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get occupant history", err, "occupancyID", id)
	}

	return &history, nil
}

// GetOpenByHouse returns the single open occupancy for a house. If more than
// one somehow exists the most recently created row wins.
func (r *occupantHistoryRepository) GetOpenByHouse(
	ctx context.Context,
	tx *gorm.DB,
	houseID int,
) (*OccupantHistory, error) {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").Function("GetOpenByHouse")

	var history OccupantHistory
	err := tx.WithContext(ctx).
		Where("house_id = ? AND end_date IS NULL", houseID).
		Order("created_at DESC").
		First(&history).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get open occupancy", err, "houseID", houseID)
	}

	return &history, nil
}

func (r *occupantHistoryRepository) GetOpenByHouseAndResident(
	ctx context.Context,
	tx *gorm.DB,
	houseID, residentID int,
) (*OccupantHistory, error) {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").
		Function("GetOpenByHouseAndResident")

	var history OccupantHistory
	err := tx.WithContext(ctx).
		Where("house_id = ? AND resident_id = ? AND end_date IS NULL", houseID, residentID).
		Order("created_at DESC").
		First(&history).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err(
			"failed to get open occupancy",
			err,
			"houseID", houseID,
			"residentID", residentID,
		)
	}

	return &history, nil
}

func (r *occupantHistoryRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	history *OccupantHistory,
) error {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(history).Error; err != nil {
		return log.Err(
			"failed to create occupant history",
			err,
			"houseID", history.HouseID,
			"residentID", history.ResidentID,
		)
	}

	return nil
}

func (r *occupantHistoryRepository) UpdateDates(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	startDate time.Time,
	endDate *time.Time,
) error {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").Function("UpdateDates")

	result := tx.WithContext(ctx).
		Model(&OccupantHistory{}).
		Where("id = ?", id).
		Updates(map[string]any{"start_date": startDate, "end_date": endDate})
	if result.Error != nil {
		return log.Err("failed to update occupancy dates", result.Error, "occupancyID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *occupantHistoryRepository) SetEndDate(
	ctx context.Context,
	tx *gorm.DB,
	id int,
	endDate time.Time,
) error {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").Function("SetEndDate")

	result := tx.WithContext(ctx).
		Model(&OccupantHistory{}).
		Where("id = ?", id).
		Update("end_date", endDate)
	if result.Error != nil {
		return log.Err("failed to set occupancy end date", result.Error, "occupancyID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *occupantHistoryRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").Function("Delete")

	result := tx.WithContext(ctx).Delete(&OccupantHistory{}, id)
	if result.Error != nil {
		return log.Err("failed to delete occupancy", result.Error, "occupancyID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *occupantHistoryRepository) DeletePaymentsByOccupancy(
	ctx context.Context,
	tx *gorm.DB,
	id int,
) error {
	log := logger.NewWithContext(ctx, "occupantHistoryRepository").
		Function("DeletePaymentsByOccupancy")

	if err := tx.WithContext(ctx).
		Where("occupant_history_id = ?", id).
		Delete(&HousePayment{}).Error; err != nil {
		return log.Err("failed to delete occupancy payments", err, "occupancyID", id)
	}

	return nil
}
