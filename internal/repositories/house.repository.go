package repositories

import (
	"context"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

// HouseWithOccupant is a house row annotated with the name of whoever holds
// the open occupancy, when there is one.
type HouseWithOccupant struct {
	House
	RecentOccupant *string `json:"recentOccupant,omitempty"`
}

type HouseRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*HouseWithOccupant, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*House, error)
	Create(ctx context.Context, tx *gorm.DB, house *House) error
	Update(ctx context.Context, tx *gorm.DB, id int, house *House) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type houseRepository struct{}

func NewHouseRepository() HouseRepository {
	return &houseRepository{}
}

func (r *houseRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*HouseWithOccupant, error) {
	log := logger.NewWithContext(ctx, "houseRepository").Function("GetAll")

	var houses []*HouseWithOccupant
	err := tx.WithContext(ctx).
		Model(&House{}).
		Select(`houses.*, (?) AS recent_occupant`, tx.Session(&gorm.Session{NewDB: true}).
			Model(&OccupantHistory{}).
			Select("residents.name").
			Joins("JOIN residents ON occupant_histories.resident_id = residents.id").
			Where("occupant_histories.house_id = houses.id").
			Where("occupant_histories.end_date IS NULL").
			Order("occupant_histories.created_at DESC").
			Limit(1),
		).
		Order("number ASC").
		Find(&houses).Error
	if err != nil {
		return nil, log.Err("failed to get houses", err)
	}

	return houses, nil
}

func (r *houseRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*House, error) {
	log := logger.NewWithContext(ctx, "houseRepository").Function("GetByID")

	var house House
	if err := tx.WithContext(ctx).First(&house, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get house", err, "houseID", id)
	}

	return &house, nil
}

func (r *houseRepository) Create(ctx context.Context, tx *gorm.DB, house *House) error {
	log := logger.NewWithContext(ctx, "houseRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(house).Error; err != nil {
		return log.Err("failed to create house", err, "number", house.Number)
	}

	return nil
}

func (r *houseRepository) Update(ctx context.Context, tx *gorm.DB, id int, house *House) error {
	log := logger.NewWithContext(ctx, "houseRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&House{}).
		Where("id = ?", id).
		Updates(map[string]any{"number": house.Number, "status": house.Status})
	if result.Error != nil {
		return log.Err("failed to update house", result.Error, "houseID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *houseRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "houseRepository").Function("Delete")

	result := tx.WithContext(ctx).Delete(&House{}, id)
	if result.Error != nil {
		return log.Err("failed to delete house", result.Error, "houseID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
