// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"staffhub/internal/domain/entity"
)

// --- Input DTOs ---

// AddressInput carries the postal address of an employee.
type AddressInput struct {
	Line1   string
	Pincode string
}

// CreateEmployeeInput defines the data required to create an employee.
// An empty Password is stored as-is without hashing.
type CreateEmployeeInput struct {
	Email        string
	Name         string
	Address      AddressInput
	Password     string
	Role         entity.Role
	DepartmentID uint
}

// UpdateEmployeeInput is a partial update. Nil fields are left untouched.
type UpdateEmployeeInput struct {
	Email        *string
	Name         *string
	Address      *AddressInput
	Password     *string
	Role         *entity.Role
	DepartmentID *uint
}

// LoginInput defines the data required for an employee to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the signed session token.
type LoginOutput struct {
	Token string
}

// EmployeeUsecase defines the employee operations exposed to the delivery layer.
type EmployeeUsecase interface {
	FindAll(ctx context.Context) ([]*entity.Employee, error)
	FindByID(ctx context.Context, id uint) (*entity.Employee, error)
	Create(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error)
	Update(ctx context.Context, id uint, input *UpdateEmployeeInput) (*entity.Employee, error)
	// Delete soft-deletes the employee with its address and returns it.
	Delete(ctx context.Context, id uint) (*entity.Employee, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
