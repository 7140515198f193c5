package models

import (
	"gorm.io/gorm"
)

type HouseStatus string

const (
	HouseStatusActive   HouseStatus = "Aktif"
	HouseStatusInactive HouseStatus = "Tidak Aktif"
)

// House is a rentable unit. Rows are soft-deleted so occupancy history survives.
type House struct {
	BaseModel
	Number string      `gorm:"type:varchar(20);not null;uniqueIndex" json:"number"`
	Status HouseStatus `gorm:"type:varchar(20);default:'Aktif'"      json:"status"`

	OccupantHistories []OccupantHistory `gorm:"foreignKey:HouseID" json:"occupantHistories,omitempty"`
}

func (h *House) BeforeCreate(tx *gorm.DB) error {
	if h.Number == "" {
		return gorm.ErrInvalidValue
	}
	if h.Status == "" {
		h.Status = HouseStatusActive
	}
	return nil
}
