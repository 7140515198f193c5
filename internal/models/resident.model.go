package models

import (
	"gorm.io/gorm"
)

type MaritalStatus string

const (
	MaritalStatusMarried MaritalStatus = "Menikah"
	MaritalStatusSingle  MaritalStatus = "Lajang"
)

type OccupantStatus string

const (
	OccupantStatusPermanent OccupantStatus = "Tetap"
	OccupantStatusContract  OccupantStatus = "Kontrak"
)

// Resident is a person living in (or owing dues to) the complex. Photo holds a
// storage reference, not the file itself.
type Resident struct {
	BaseModel
	Name           string         `gorm:"type:varchar(100);not null;index" json:"name"`
	Photo          *string        `gorm:"type:varchar(150)"                json:"photo,omitempty"`
	MaritalStatus  MaritalStatus  `gorm:"type:varchar(20);default:'Lajang'" json:"maritalStatus"`
	OccupantStatus OccupantStatus `gorm:"type:varchar(20);not null"        json:"occupantStatus"`
	MobileNumber   *string        `gorm:"type:varchar(25)"                 json:"mobileNumber,omitempty"`

	OccupantHistories []OccupantHistory `gorm:"foreignKey:ResidentID" json:"occupantHistories,omitempty"`
}

func (r *Resident) BeforeCreate(tx *gorm.DB) error {
	if r.Name == "" {
		return gorm.ErrInvalidValue
	}
	if r.MaritalStatus == "" {
		r.MaritalStatus = MaritalStatusSingle
	}
	if r.OccupantStatus == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}
