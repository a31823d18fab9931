package model

import (
	"time"

	"gorm.io/gorm"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         uint   `gorm:"primaryKey"`
	EmployeeID uint   `gorm:"not null;uniqueIndex"`
	Line1      string `gorm:"type:text;not null"`
	Pincode    string `gorm:"type:varchar(16);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
