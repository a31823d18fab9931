// Package entity contains the core business objects of the project.
package entity

import "time"

// Department groups employees. Its lifecycle is independent of its employees,
// but it can only be soft-deleted once no active employee references it.
type Department struct {
	ID          uint
	Name        string
	Description string
	Employees   []*Employee // Non-deleted employees referencing this department.
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// HasEmployees reports whether any active employee still references the department.
func (d *Department) HasEmployees() bool {
	return len(d.Employees) > 0
}
