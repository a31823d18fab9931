package usecase

import (
	"context"

	"staffhub/internal/domain/entity"
)

// CreateDepartmentInput defines the data required to create a department.
type CreateDepartmentInput struct {
	Name        string
	Description string
}

// UpdateDepartmentInput lists the employees to attach to the department.
// Attaching is additive; employees already in the department stay there.
type UpdateDepartmentInput struct {
	EmployeeIDs []uint
}

// DepartmentUsecase defines the department operations exposed to the delivery layer.
type DepartmentUsecase interface {
	FindAll(ctx context.Context) ([]*entity.Department, error)
	FindByID(ctx context.Context, id uint) (*entity.Department, error)
	Create(ctx context.Context, input *CreateDepartmentInput) (*entity.Department, error)
	Update(ctx context.Context, id uint, input *UpdateDepartmentInput) (*entity.Department, error)
	// Delete soft-deletes a department that has no active employees.
	Delete(ctx context.Context, id uint) (*entity.Department, error)
}
