package postgres

import (
	"time"

	"staffhub/internal/domain/entity"
	"staffhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

func toEmployeeDomain(m *model.EmployeeModel) *entity.Employee {
	if m == nil {
		return nil
	}

	employee := &entity.Employee{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Address:      toAddressDomain(m.Address),
		PasswordHash: m.Password,
		Role:         entity.Role(m.Role),
		DepartmentID: m.DepartmentID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    fromDeletedAt(m.DeletedAt),
	}
	if m.Department != nil {
		// Shallow copy: the department's own employee list is not loaded from here.
		employee.Department = &entity.Department{
			ID:          m.Department.ID,
			Name:        m.Department.Name,
			Description: m.Department.Description,
			CreatedAt:   m.Department.CreatedAt,
			UpdatedAt:   m.Department.UpdatedAt,
			DeletedAt:   fromDeletedAt(m.Department.DeletedAt),
		}
	}

	return employee
}

// fromEmployeeDomain builds the row for e. The department association is
// never set so saves only touch department_id.
func fromEmployeeDomain(e *entity.Employee) *model.EmployeeModel {
	return &model.EmployeeModel{
		ID:           e.ID,
		Email:        e.Email,
		Name:         e.Name,
		Password:     e.PasswordHash,
		Role:         e.Role.String(),
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		DeletedAt:    toDeletedAt(e.DeletedAt),
		Address:      fromAddressDomain(e.Address),
	}
}

func toAddressDomain(m *model.AddressModel) *entity.Address {
	if m == nil {
		return nil
	}

	return &entity.Address{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Line1:      m.Line1,
		Pincode:    m.Pincode,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  fromDeletedAt(m.DeletedAt),
	}
}

func fromAddressDomain(a *entity.Address) *model.AddressModel {
	if a == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Line1:      a.Line1,
		Pincode:    a.Pincode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		DeletedAt:  toDeletedAt(a.DeletedAt),
	}
}

func toDepartmentDomain(m *model.DepartmentModel) *entity.Department {
	if m == nil {
		return nil
	}

	department := &entity.Department{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Employees:   make([]*entity.Employee, 0, len(m.Employees)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   fromDeletedAt(m.DeletedAt),
	}
	for _, employeeM := range m.Employees {
		department.Employees = append(department.Employees, toEmployeeDomain(employeeM))
	}

	return department
}

func fromDepartmentDomain(d *entity.Department) *model.DepartmentModel {
	return &model.DepartmentModel{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		DeletedAt:   toDeletedAt(d.DeletedAt),
	}
}

func fromDeletedAt(d gorm.DeletedAt) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time

	return &t
}

func toDeletedAt(t *time.Time) gorm.DeletedAt {
	if t == nil {
		return gorm.DeletedAt{}
	}

	return gorm.DeletedAt{Time: *t, Valid: true}
}
