// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an employee can have in the system.
type Role string

const (
	// RoleHR is the privileged role allowed to create, update and delete
	// employees and departments.
	RoleHR Role = "HR"
	// RoleStaff indicates a regular employee.
	RoleStaff Role = "STAFF"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleHR, RoleStaff:
		return true
	default:
		return false
	}
}
