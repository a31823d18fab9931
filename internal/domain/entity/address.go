// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is the postal address owned by exactly one Employee. It is created,
// updated and soft-deleted together with its owner.
type Address struct {
	ID         uint       // Generated identifier.
	EmployeeID uint       // The owning employee.
	Line1      string     // Free-text street line.
	Pincode    string     // Postal code.
	CreatedAt  time.Time  // Timestamp of when this address was created.
	UpdatedAt  time.Time  // Timestamp of the last modification.
	DeletedAt  *time.Time // Set when the owning employee is soft-deleted.
}
