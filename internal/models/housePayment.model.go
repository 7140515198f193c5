package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Lunas"
	PaymentStatusUnpaid PaymentStatus = "Belum Lunas"
)

// PaymentStatusFromPaid maps the boolean "fully paid" flag used on the wire to
// the stored display status.
func PaymentStatusFromPaid(paid bool) PaymentStatus {
	if paid {
		return PaymentStatusPaid
	}
	return PaymentStatusUnpaid
}

// HousePayment is one installment against a house contract. It always belongs
// to an occupancy, never directly to a house or resident.
type HousePayment struct {
	BaseRecordModel
	OccupantHistoryID int             `gorm:"not null;index"                     json:"occupantHistoryId"`
	PaymentDate       time.Time       `gorm:"type:date;not null"                 json:"paymentDate"`
	PaymentAmount     decimal.Decimal `gorm:"type:decimal(20,2);not null"        json:"paymentAmount"`
	PaymentStatus     PaymentStatus   `gorm:"type:varchar(20);default:'Lunas'"   json:"paymentStatus"`
	Description       *string         `gorm:"type:text"                          json:"description,omitempty"`

	OccupantHistory *OccupantHistory `gorm:"foreignKey:OccupantHistoryID;constraint:OnDelete:CASCADE" json:"occupantHistory,omitempty"`
}

func (p *HousePayment) BeforeCreate(tx *gorm.DB) error {
	if p.OccupantHistoryID == 0 {
		return gorm.ErrInvalidValue
	}
	if p.PaymentAmount.IsNegative() {
		return gorm.ErrInvalidValue
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = PaymentStatusPaid
	}
	return nil
}

// IsPaid reports whether the installment counts toward earnings totals.
func (p *HousePayment) IsPaid() bool {
	return p.PaymentStatus == PaymentStatusPaid
}
