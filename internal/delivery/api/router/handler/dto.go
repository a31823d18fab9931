package handler

import (
	"time"

	"staffhub/internal/domain/entity"
)

// AddressRequest is the address body shared by create and update.
type AddressRequest struct {
	Line1   string `json:"line1" validate:"required"`
	Pincode string `json:"pincode" validate:"required,max=16"`
}

// AddressResponse is the public view of an address.
type AddressResponse struct {
	ID        uint       `json:"id"`
	Line1     string     `json:"line1"`
	Pincode   string     `json:"pincode"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at"`
}

// DepartmentSummary is a department without its employee list.
type DepartmentSummary struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

// EmployeeResponse is the public view of an employee. The password hash is never exposed.
type EmployeeResponse struct {
	ID           uint               `json:"id"`
	Email        string             `json:"email"`
	Name         string             `json:"name"`
	Role         string             `json:"role"`
	DepartmentID uint               `json:"department_id"`
	Address      *AddressResponse   `json:"address"`
	Department   *DepartmentSummary `json:"department,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    *time.Time         `json:"deleted_at"`
}

// DepartmentResponse is a department with its active employees.
type DepartmentResponse struct {
	DepartmentSummary
	Employees []*EmployeeResponse `json:"employees"`
}

func toAddressResponse(a *entity.Address) *AddressResponse {
	if a == nil {
		return nil
	}

	return &AddressResponse{
		ID:        a.ID,
		Line1:     a.Line1,
		Pincode:   a.Pincode,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		DeletedAt: a.DeletedAt,
	}
}

func toDepartmentSummary(d *entity.Department) *DepartmentSummary {
	if d == nil {
		return nil
	}

	return &DepartmentSummary{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		DeletedAt:   d.DeletedAt,
	}
}

func toEmployeeResponse(e *entity.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:           e.ID,
		Email:        e.Email,
		Name:         e.Name,
		Role:         e.Role.String(),
		DepartmentID: e.DepartmentID,
		Address:      toAddressResponse(e.Address),
		Department:   toDepartmentSummary(e.Department),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		DeletedAt:    e.DeletedAt,
	}
}

func toEmployeeResponses(employees []*entity.Employee) []*EmployeeResponse {
	out := make([]*EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}

	return out
}

func toDepartmentResponse(d *entity.Department) *DepartmentResponse {
	return &DepartmentResponse{
		DepartmentSummary: *toDepartmentSummary(d),
		Employees:         toEmployeeResponses(d.Employees),
	}
}

func toDepartmentResponses(departments []*entity.Department) []*DepartmentResponse {
	out := make([]*DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, toDepartmentResponse(d))
	}

	return out
}
