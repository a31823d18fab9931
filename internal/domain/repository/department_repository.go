package repository

import (
	"context"

	"staffhub/internal/domain/entity"
	"staffhub/internal/errors"
)

// ErrDepartmentNotFound is returned when no non-deleted department matches the lookup.
var ErrDepartmentNotFound = errors.New("department not found")

// DepartmentRepository defines the persistence operations for departments.
// Reads exclude soft-deleted rows and populate the non-deleted employees.
type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]*entity.Department, error)

	FindByID(ctx context.Context, id uint) (*entity.Department, error)

	// Create persists a new department and fills the generated id and timestamps.
	Create(ctx context.Context, department *entity.Department) error

	// SoftDelete marks the department as deleted and records the timestamp on the entity.
	SoftDelete(ctx context.Context, department *entity.Department) error
}
