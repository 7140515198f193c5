package models

import (
	"time"

	"gorm.io/gorm"
)

// DuePayment records one resident settling one due type on one date. The
// amount lives on the due type, not the payment row.
type DuePayment struct {
	BaseRecordModel
	DueTypeID   int       `gorm:"not null;index"     json:"dueTypeId"`
	ResidentID  int       `gorm:"not null;index"     json:"residentId"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Description *string   `gorm:"type:text"          json:"description,omitempty"`

	DueType  *DueType  `gorm:"foreignKey:DueTypeID;constraint:OnDelete:CASCADE"  json:"dueType,omitempty"`
	Resident *Resident `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"resident,omitempty"`
}

func (d *DuePayment) BeforeCreate(tx *gorm.DB) error {
	if d.DueTypeID == 0 || d.ResidentID == 0 {
		return gorm.ErrInvalidValue
	}
	if d.Date.IsZero() {
		return gorm.ErrInvalidValue
	}
	return nil
}
