package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel is for soft-deletable reference entities (House, Resident,
// DueType, SpendingType). The DeletedAt tombstone is the uniform read filter.
type BaseModel struct {
	ID        int            `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `gorm:"autoCreateTime"                    json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"                    json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index"                             json:"deletedAt,omitempty"`
}

// BaseRecordModel is for transactional rows (occupancies, payments,
// spendings). These are hard-deleted, inside transactions, never tombstoned.
type BaseRecordModel struct {
	ID        int       `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                    json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                    json:"updatedAt"`
}
