package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEmployee() *Employee {
	return &Employee{
		ID:           7,
		Email:        "alex@x.com",
		Name:         "Alex",
		PasswordHash: "old-hash",
		Role:         RoleStaff,
		DepartmentID: 1,
		Department:   &Department{ID: 1, Name: "HR"},
		Address:      &Address{ID: 3, EmployeeID: 7, Line1: "A St", Pincode: "12345"},
	}
}

func TestEmployee_ApplyChanges_LeavesAbsentFieldsUntouched(t *testing.T) {
	emp := newTestEmployee()
	name := "Alexander"

	emp.ApplyChanges(EmployeeChanges{Name: &name})

	assert.Equal(t, "Alexander", emp.Name)
	assert.Equal(t, "alex@x.com", emp.Email)
	assert.Equal(t, "old-hash", emp.PasswordHash)
	assert.Equal(t, RoleStaff, emp.Role)
	assert.Equal(t, uint(1), emp.DepartmentID)
	assert.NotNil(t, emp.Department)
	assert.Equal(t, &Address{ID: 3, EmployeeID: 7, Line1: "A St", Pincode: "12345"}, emp.Address)
}

func TestEmployee_ApplyChanges_OverwritesAddressInPlace(t *testing.T) {
	emp := newTestEmployee()
	addr := emp.Address

	emp.ApplyChanges(EmployeeChanges{Address: &AddressChanges{Line1: "B St", Pincode: "54321"}})

	assert.Same(t, addr, emp.Address)
	assert.Equal(t, uint(3), emp.Address.ID)
	assert.Equal(t, "B St", emp.Address.Line1)
	assert.Equal(t, "54321", emp.Address.Pincode)
}

func TestEmployee_ApplyChanges_IsIdempotent(t *testing.T) {
	email := "new@x.com"
	role := RoleHR
	dept := uint(2)
	hash := "new-hash"
	changes := EmployeeChanges{
		Email:        &email,
		Role:         &role,
		DepartmentID: &dept,
		PasswordHash: &hash,
		Address:      &AddressChanges{Line1: "C St", Pincode: "99999"},
	}

	once := newTestEmployee()
	once.ApplyChanges(changes)

	twice := newTestEmployee()
	twice.ApplyChanges(changes)
	twice.ApplyChanges(changes)

	assert.Equal(t, once, twice)
	assert.Equal(t, uint(2), once.DepartmentID)
	assert.Nil(t, once.Department)
	assert.Equal(t, "new-hash", once.PasswordHash)
}

func TestEmployee_ApplyChanges_SameDepartmentKeepsLoadedRelation(t *testing.T) {
	emp := newTestEmployee()
	dept := uint(1)

	emp.ApplyChanges(EmployeeChanges{DepartmentID: &dept})

	assert.NotNil(t, emp.Department)
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleHR.IsValid())
	assert.True(t, RoleStaff.IsValid())
	assert.False(t, Role("ADMIN").IsValid())
	assert.False(t, Role("hr").IsValid())
}

func TestDepartment_HasEmployees(t *testing.T) {
	assert.False(t, (&Department{}).HasEmployees())
	assert.True(t, (&Department{Employees: []*Employee{{ID: 1}}}).HasEmployees())
}
