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
)

// departmentRepository implements repository.DepartmentRepository using GORM.
type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository returns a DepartmentRepository bound to db.
func NewDepartmentRepository(db *gorm.DB) repository.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (repo *departmentRepository) withEmployees(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Employees", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Employees.Address")
}

func (repo *departmentRepository) FindAll(ctx context.Context) ([]*entity.Department, error) {
	var departmentModels []*model.DepartmentModel
	if err := repo.withEmployees(ctx).Order("id").Find(&departmentModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list departments")
	}

	departments := make([]*entity.Department, 0, len(departmentModels))
	for _, departmentM := range departmentModels {
		departments = append(departments, toDepartmentDomain(departmentM))
	}

	return departments, nil
}

func (repo *departmentRepository) FindByID(ctx context.Context, id uint) (*entity.Department, error) {
	var departmentM model.DepartmentModel
	if err := repo.withEmployees(ctx).Where("id = ?", id).First(&departmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDepartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find department by id")
	}

	return toDepartmentDomain(&departmentM), nil
}

func (repo *departmentRepository) Create(ctx context.Context, department *entity.Department) error {
	departmentM := fromDepartmentDomain(department)

	if err := repo.db.WithContext(ctx).Create(departmentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create department")
	}

	department.ID = departmentM.ID
	department.CreatedAt = departmentM.CreatedAt
	department.UpdatedAt = departmentM.UpdatedAt
	if department.Employees == nil {
		department.Employees = []*entity.Employee{}
	}

	return nil
}

func (repo *departmentRepository) SoftDelete(ctx context.Context, department *entity.Department) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.DepartmentModel{}).
		Where("id = ?", department.ID).
		Update("deleted_at", now)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete department")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}
	department.DeletedAt = &now

	return nil
}
