// Package model holds the GORM table mappings. Domain code never sees these types.
package model

import (
	"time"

	"gorm.io/gorm"
)

// DepartmentModel mirrors the 'departments' table.
type DepartmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Employees []*EmployeeModel `gorm:"foreignKey:DepartmentID"`
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}
