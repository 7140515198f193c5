package models

import (
	"time"

	"gorm.io/gorm"
)

type Spending struct {
	BaseRecordModel
	SpendingTypeID int       `gorm:"not null;index"     json:"spendingTypeId"`
	Date           time.Time `gorm:"type:date;not null" json:"date"`
	Description    *string   `gorm:"type:text"          json:"description,omitempty"`

	SpendingType *SpendingType `gorm:"foreignKey:SpendingTypeID;constraint:OnDelete:CASCADE" json:"spendingType,omitempty"`
}

func (s *Spending) BeforeCreate(tx *gorm.DB) error {
	if s.SpendingTypeID == 0 {
		return gorm.ErrInvalidValue
	}
	if s.Date.IsZero() {
		return gorm.ErrInvalidValue
	}
	return nil
}
