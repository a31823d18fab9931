// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Employee is the core entity of the system. The email doubles as the login key.
type Employee struct {
	ID           uint        // Generated identifier.
	Email        string      // Unique among non-deleted employees.
	Name         string      // Display name.
	Address      *Address    // Owned 1:1 address, never nil once persisted.
	PasswordHash string      // bcrypt hash, or "" when created without a password.
	Role         Role        // Authorization role carried into session tokens.
	DepartmentID uint        // Referenced department.
	Department   *Department // Populated on reads; nil on freshly built entities.
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// EmployeeChanges is a partial update. Nil fields are left untouched.
type EmployeeChanges struct {
	Name         *string
	Email        *string
	Address      *AddressChanges
	PasswordHash *string
	Role         *Role
	DepartmentID *uint
}

// AddressChanges overwrites both address lines of the existing address row.
type AddressChanges struct {
	Line1   string
	Pincode string
}

// ApplyChanges merges c onto e field by field. The address row keeps its
// identity; only its line1 and pincode are overwritten.
func (e *Employee) ApplyChanges(c EmployeeChanges) {
	if c.Name != nil {
		e.Name = *c.Name
	}
	if c.Email != nil {
		e.Email = *c.Email
	}
	if c.Address != nil {
		if e.Address == nil {
			e.Address = &Address{EmployeeID: e.ID}
		}
		e.Address.Line1 = c.Address.Line1
		e.Address.Pincode = c.Address.Pincode
	}
	if c.PasswordHash != nil {
		e.PasswordHash = *c.PasswordHash
	}
	if c.Role != nil {
		e.Role = *c.Role
	}
	if c.DepartmentID != nil && *c.DepartmentID != e.DepartmentID {
		e.DepartmentID = *c.DepartmentID
		// The loaded department no longer matches the reference.
		e.Department = nil
	}
}
