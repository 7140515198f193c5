package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SpendingType struct {
	BaseModel
	Name   string          `gorm:"type:varchar(100);not null"  json:"name"`
	Amount decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
}

func (s *SpendingType) BeforeCreate(tx *gorm.DB) error {
	if s.Name == "" {
		return gorm.ErrInvalidValue
	}
	if s.Amount.IsNegative() {
		return gorm.ErrInvalidValue
	}
	return nil
}
