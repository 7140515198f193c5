package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DueType is a recurring fixed-amount charge category (security, cleaning, ...).
type DueType struct {
	BaseModel
	Name   string          `gorm:"type:varchar(100);not null"  json:"name"`
	Amount decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
}

func (d *DueType) BeforeCreate(tx *gorm.DB) error {
	if d.Name == "" {
		return gorm.ErrInvalidValue
	}
	if d.Amount.IsNegative() {
		return gorm.ErrInvalidValue
	}
	return nil
}
