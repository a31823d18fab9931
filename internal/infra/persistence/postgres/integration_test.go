//go:build integration

package postgres

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to TEST_DATABASE_DSN, applies migrations and truncates
// the tables. The test is skipped when the DSN is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, RunMigrations(sqlDB, slog.New(slog.DiscardHandler)))

	require.NoError(t, db.Exec("TRUNCATE addresses, employees, departments RESTART IDENTITY CASCADE").Error)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestIntegration_EmployeeLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)
	departments := NewDepartmentRepository(db)
	employees := NewEmployeeRepository(db)

	engineering := &entity.Department{Name: "Engineering", Description: "Builds things"}
	require.NoError(t, departments.Create(ctx, engineering))
	require.NotZero(t, engineering.ID)

	employee := &entity.Employee{
		Email:        "a@x.io",
		Name:         "A",
		PasswordHash: "hash",
		Role:         entity.RoleStaff,
		DepartmentID: engineering.ID,
		Address:      &entity.Address{Line1: "1 Main St", Pincode: "560001"},
	}
	require.NoError(t, txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.EmployeeRepo().Create(ctx, employee)
	}))
	require.NotZero(t, employee.ID)
	require.NotZero(t, employee.Address.ID)

	loaded, err := employees.FindByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, employee.ID, loaded.ID)
	require.NotNil(t, loaded.Department)
	assert.Equal(t, "Engineering", loaded.Department.Name)
	assert.Equal(t, "560001", loaded.Address.Pincode)

	addressID := loaded.Address.ID
	loaded.ApplyChanges(entity.EmployeeChanges{Address: &entity.AddressChanges{Line1: "2 Side St", Pincode: "560002"}})
	require.NoError(t, employees.Update(ctx, loaded))

	reloaded, err := employees.FindByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, addressID, reloaded.Address.ID)
	assert.Equal(t, "2 Side St", reloaded.Address.Line1)

	var addressCount int64
	require.NoError(t, db.Table("addresses").Where("employee_id = ?", employee.ID).Count(&addressCount).Error)
	assert.EqualValues(t, 1, addressCount)

	dept, err := departments.FindByID(ctx, engineering.ID)
	require.NoError(t, err)
	assert.True(t, dept.HasEmployees())

	require.NoError(t, employees.SoftDelete(ctx, reloaded))
	require.NotNil(t, reloaded.DeletedAt)

	_, err = employees.FindByID(ctx, employee.ID)
	assert.ErrorIs(t, err, repository.ErrEmployeeNotFound)

	var addressDeleted int64
	require.NoError(t, db.Table("addresses").
		Where("employee_id = ? AND deleted_at IS NOT NULL", employee.ID).
		Count(&addressDeleted).Error)
	assert.EqualValues(t, 1, addressDeleted)

	dept, err = departments.FindByID(ctx, engineering.ID)
	require.NoError(t, err)
	assert.False(t, dept.HasEmployees())

	require.NoError(t, departments.SoftDelete(ctx, dept))
	_, err = departments.FindByID(ctx, engineering.ID)
	assert.ErrorIs(t, err, repository.ErrDepartmentNotFound)
}

func TestIntegration_ConstraintViolations(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	departments := NewDepartmentRepository(db)
	employees := NewEmployeeRepository(db)

	sales := &entity.Department{Name: "Sales", Description: "Sells things"}
	require.NoError(t, departments.Create(ctx, sales))

	newEmployee := func(email string, departmentID uint) *entity.Employee {
		return &entity.Employee{
			Email:        email,
			Name:         "B",
			Role:         entity.RoleHR,
			DepartmentID: departmentID,
			Address:      &entity.Address{Line1: "x", Pincode: "1"},
		}
	}

	require.NoError(t, employees.Create(ctx, newEmployee("b@x.io", sales.ID)))

	err := employees.Create(ctx, newEmployee("b@x.io", sales.ID))
	assert.True(t, errors.Is(err, domainerrors.ErrEmployeeAlreadyExists))

	err = employees.Create(ctx, newEmployee("c@x.io", 9999))
	assert.True(t, errors.Is(err, domainerrors.ErrDepartmentNotFound))
}

func TestIntegration_AttachToDepartment(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	departments := NewDepartmentRepository(db)
	employees := NewEmployeeRepository(db)

	first := &entity.Department{Name: "First", Description: "1"}
	second := &entity.Department{Name: "Second", Description: "2"}
	require.NoError(t, departments.Create(ctx, first))
	require.NoError(t, departments.Create(ctx, second))

	employee := &entity.Employee{
		Email:        "d@x.io",
		Name:         "D",
		Role:         entity.RoleStaff,
		DepartmentID: first.ID,
		Address:      &entity.Address{Line1: "x", Pincode: "1"},
	}
	require.NoError(t, employees.Create(ctx, employee))

	affected, err := employees.AttachToDepartment(ctx, second.ID, []uint{employee.ID, 4242})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	dept, err := departments.FindByID(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, dept.Employees, 1)
	assert.Equal(t, employee.ID, dept.Employees[0].ID)
}
