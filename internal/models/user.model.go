package models

import (
	"gorm.io/gorm"
)

// User is a staff account. Password is always stored hashed.
type User struct {
	BaseRecordModel
	Name     string `gorm:"type:varchar(100);not null"        json:"name"`
	Email    string `gorm:"type:varchar(100);not null;unique" json:"email"`
	Password string `gorm:"type:varchar(100);not null"        json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Email == "" || u.Password == "" {
		return gorm.ErrInvalidValue
	}
	return nil
}
