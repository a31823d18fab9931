// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"staffhub/internal/domain/entity"
	"staffhub/internal/errors"
)

// ErrEmployeeNotFound is returned when no non-deleted employee matches the lookup.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository defines the persistence operations for employees.
// Reads exclude soft-deleted rows and populate Address and Department.
type EmployeeRepository interface {
	// FindAll retrieves every non-deleted employee.
	FindAll(ctx context.Context) ([]*entity.Employee, error)

	// FindByID retrieves a single employee by id.
	FindByID(ctx context.Context, id uint) (*entity.Employee, error)

	// FindByEmail retrieves a single employee by login email.
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)

	// Create persists a new employee together with its address and fills the
	// generated ids and timestamps back into the entity.
	Create(ctx context.Context, employee *entity.Employee) error

	// Update saves the employee scalar fields and its address row.
	Update(ctx context.Context, employee *entity.Employee) error

	// SoftDelete marks the employee and its address as deleted and records
	// the deletion timestamp on the entity.
	SoftDelete(ctx context.Context, employee *entity.Employee) error

	// AttachToDepartment points the given employees at departmentID and
	// returns the number of rows affected.
	AttachToDepartment(ctx context.Context, departmentID uint, employeeIDs []uint) (int64, error)
}
