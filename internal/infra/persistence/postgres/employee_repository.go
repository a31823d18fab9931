package postgres

import (
	"context"
	"time"

	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/errors"
	"staffhub/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// employeeRepository implements repository.EmployeeRepository using GORM.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository returns an EmployeeRepository bound to db, which may
// be a transaction.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (repo *employeeRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Department")
}

// FindAll retrieves every non-deleted employee ordered by id.
func (repo *employeeRepository) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	var employeeModels []*model.EmployeeModel
	if err := repo.withRelations(ctx).Order("id").Find(&employeeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list employees")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, nil
}

// FindByID retrieves a single employee by id.
func (repo *employeeRepository) FindByID(ctx context.Context, id uint) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	if err := repo.withRelations(ctx).Where("id = ?", id).First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by id")
	}

	return toEmployeeDomain(&employeeM), nil
}

// FindByEmail retrieves a single employee by login email.
func (repo *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel
	if err := repo.withRelations(ctx).Where("email = ?", email).First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by email")
	}

	return toEmployeeDomain(&employeeM), nil
}

// Create inserts the employee row and its address in one statement batch.
func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		return translateEmployeeWriteError(err, "failed to create employee")
	}

	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt
	if employee.Address != nil && employeeM.Address != nil {
		employee.Address.ID = employeeM.Address.ID
		employee.Address.EmployeeID = employeeM.Address.EmployeeID
		employee.Address.CreatedAt = employeeM.Address.CreatedAt
		employee.Address.UpdatedAt = employeeM.Address.UpdatedAt
	}

	return nil
}

// Update saves the employee scalar columns, then the address row.
func (repo *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Save(employeeM).Error; err != nil {
		return translateEmployeeWriteError(err, "failed to update employee")
	}
	employee.UpdatedAt = employeeM.UpdatedAt

	if employee.Address == nil {
		return nil
	}

	addressM := fromAddressDomain(employee.Address)
	addressM.EmployeeID = employee.ID
	if err := repo.db.WithContext(ctx).Save(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update employee address")
	}
	employee.Address.ID = addressM.ID
	employee.Address.EmployeeID = addressM.EmployeeID
	employee.Address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// SoftDelete stamps deleted_at on the employee and its address.
func (repo *employeeRepository) SoftDelete(ctx context.Context, employee *entity.Employee) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id = ?", employee.ID).
		Update("deleted_at", now)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete employee")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("employee_id = ?", employee.ID).
		Update("deleted_at", now).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete employee address")
	}

	employee.DeletedAt = &now
	if employee.Address != nil {
		employee.Address.DeletedAt = &now
	}

	return nil
}

// AttachToDepartment sets department_id on the non-deleted employees in employeeIDs.
func (repo *employeeRepository) AttachToDepartment(ctx context.Context, departmentID uint, employeeIDs []uint) (int64, error) {
	if len(employeeIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.EmployeeModel{}).
		Where("id IN ?", employeeIDs).
		Update("department_id", departmentID)
	if result.Error != nil {
		return 0, translateEmployeeWriteError(result.Error, "failed to attach employees to department")
	}

	return result.RowsAffected, nil
}

func translateEmployeeWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrEmployeeAlreadyExists.WrapMessage("email already exists")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrDepartmentNotFound.WrapMessage("referenced department does not exist")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
