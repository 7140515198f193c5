package repositories

import (
	"context"
	"wisma/internal/logger"
	. "wisma/internal/models"

	"gorm.io/gorm"
)

type ResidentRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Resident, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int) (*Resident, error)
	Create(ctx context.Context, tx *gorm.DB, resident *Resident) error
	Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id int) error
}

type residentRepository struct{}

func NewResidentRepository() ResidentRepository {
	return &residentRepository{}
}

func (r *residentRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Resident, error) {
	log := logger.NewWithContext(ctx, "residentRepository").Function("GetAll")

	var residents []*Resident
	if err := tx.WithContext(ctx).
		Order("created_at DESC").
		Find(&residents).Error; err != nil {
		return nil, log.Err("failed to get residents", err)
	}

	return residents, nil
}

func (r *residentRepository) GetByID(ctx context.Context, tx *gorm.DB, id int) (*Resident, error) {
	log := logger.NewWithContext(ctx, "residentRepository").Function("GetByID")

	var resident Resident
	if err := tx.WithContext(ctx).First(&resident, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get resident", err, "residentID", id)
	}

	return &resident, nil
}

func (r *residentRepository) Create(ctx context.Context, tx *gorm.DB, resident *Resident) error {
	log := logger.NewWithContext(ctx, "residentRepository").Function("Create")

	if err := tx.WithContext(ctx).Create(resident).Error; err != nil {
		return log.Err("failed to create resident", err, "name", resident.Name)
	}

	return nil
}

func (r *residentRepository) Update(ctx context.Context, tx *gorm.DB, id int, updates map[string]any) error {
	log := logger.NewWithContext(ctx, "residentRepository").Function("Update")

	result := tx.WithContext(ctx).
		Model(&Resident{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return log.Err("failed to update resident", result.Error, "residentID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *residentRepository) Delete(ctx context.Context, tx *gorm.DB, id int) error {
	log := logger.NewWithContext(ctx, "residentRepository").Function("Delete")

	result := tx.WithContext(ctx).Delete(&Resident{}, id)
	if result.Error != nil {
		return log.Err("failed to delete resident", result.Error, "residentID", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
