package models

import (
	"time"

	"gorm.io/gorm"
)

// OccupantHistory links one resident to one house over [StartDate, EndDate].
// A NULL EndDate means the occupancy is still active. Invariant: a house has at
// most one open occupancy at any time, enforced in OccupancyService and backed
// by a partial unique index on (house_id) WHERE end_date IS NULL.
type OccupantHistory struct {
	BaseRecordModel
	HouseID    int        `gorm:"not null;index"      json:"houseId"`
	ResidentID int        `gorm:"not null;index"      json:"residentId"`
	StartDate  time.Time  `gorm:"type:date;not null"  json:"startDate"`
	EndDate    *time.Time `gorm:"type:date"           json:"endDate,omitempty"`

	House         *House         `gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"    json:"house,omitempty"`
	Resident      *Resident      `gorm:"foreignKey:ResidentID;constraint:OnDelete:CASCADE" json:"resident,omitempty"`
	HousePayments []HousePayment `gorm:"foreignKey:OccupantHistoryID"                      json:"housePayments,omitempty"`
}

func (o *OccupantHistory) BeforeCreate(tx *gorm.DB) error {
	if o.HouseID == 0 || o.ResidentID == 0 {
		return gorm.ErrInvalidValue
	}
	if o.StartDate.IsZero() {
		return gorm.ErrInvalidValue
	}
	return nil
}

// IsOpen reports whether the occupancy has no end date yet.
func (o *OccupantHistory) IsOpen() bool {
	return o.EndDate == nil
}
