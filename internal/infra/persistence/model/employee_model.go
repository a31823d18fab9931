package model

import (
	"time"

	"gorm.io/gorm"
)

// EmployeeModel mirrors the 'employees' table. The email is unique among
// non-deleted rows (partial index, see migrations).
type EmployeeModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(255);not null"`
	Password     string `gorm:"type:varchar(255);not null;default:''"`
	Role         string `gorm:"type:varchar(32);not null"`
	DepartmentID uint   `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Address    *AddressModel    `gorm:"foreignKey:EmployeeID"`
	Department *DepartmentModel `gorm:"foreignKey:DepartmentID"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
