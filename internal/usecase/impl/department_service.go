package impl

import (
	"context"
	"log/slog"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/errors"
	"staffhub/internal/usecase"

	"go.uber.org/fx"
)

type departmentService struct {
	txManager      repository.TransactionManager
	departmentRepo repository.DepartmentRepository
	logger         *slog.Logger
}

// DepartmentServiceParams holds dependencies for DepartmentService, injected by Fx.
type DepartmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DepartmentRepo repository.DepartmentRepository
	Logger         *slog.Logger
}

// NewDepartmentService is the constructor for departmentService.
func NewDepartmentService(params DepartmentServiceParams) usecase.DepartmentUsecase {
	return &departmentService{
		txManager:      params.TxManager,
		departmentRepo: params.DepartmentRepo,
		logger:         params.Logger,
	}
}

func (srv *departmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *departmentService) FindAll(ctx context.Context) ([]*entity.Department, error) {
	departments, err := srv.departmentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return departments, nil
}

func (srv *departmentService) FindByID(ctx context.Context, id uint) (*entity.Department, error) {
	department, err := srv.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapDepartmentLookupError(err, "failed to find department")
	}

	return department, nil
}

func (srv *departmentService) Create(ctx context.Context, input *usecase.CreateDepartmentInput) (*entity.Department, error) {
	department := &entity.Department{
		Name:        input.Name,
		Description: input.Description,
		Employees:   []*entity.Employee{},
	}

	if err := srv.departmentRepo.Create(ctx, department); err != nil {
		srv.log(ctx).Error("Failed to create department", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create department")
	}

	srv.log(ctx).Info("Department created", slog.Any("departmentID", department.ID))

	return department, nil
}

// Update attaches the listed employees to the department. Every distinct id
// must name an active employee.
func (srv *departmentService) Update(ctx context.Context, id uint, input *usecase.UpdateDepartmentInput) (*entity.Department, error) {
	employeeIDs := distinctIDs(input.EmployeeIDs)

	var updated *entity.Department
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		departmentRepo := repoFactory.DepartmentRepo()

		if _, err := departmentRepo.FindByID(ctx, id); err != nil {
			return mapDepartmentLookupError(err, "failed to find department for update")
		}

		affected, err := repoFactory.EmployeeRepo().AttachToDepartment(ctx, id, employeeIDs)
		if err != nil {
			return errors.Wrap(err, "failed to attach employees")
		}
		if affected < int64(len(employeeIDs)) {
			return errors.Wrapf(domainerrors.ErrEmployeeNotFound, "%d of %d employees not found", int64(len(employeeIDs))-affected, len(employeeIDs))
		}

		reloaded, err := departmentRepo.FindByID(ctx, id)
		if err != nil {
			return mapDepartmentLookupError(err, "failed to reload department")
		}
		updated = reloaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update department", slog.Any("departmentID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute department update transaction")
	}

	srv.log(ctx).Info("Department updated", slog.Any("departmentID", id), slog.Int("employees", len(employeeIDs)))

	return updated, nil
}

// Delete soft-deletes the department once it has no active employees.
func (srv *departmentService) Delete(ctx context.Context, id uint) (*entity.Department, error) {
	var deleted *entity.Department
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		departmentRepo := repoFactory.DepartmentRepo()

		department, err := departmentRepo.FindByID(ctx, id)
		if err != nil {
			return mapDepartmentLookupError(err, "failed to find department for delete")
		}

		if department.HasEmployees() {
			return errors.WithStack(domainerrors.ErrDepartmentHasEmployees)
		}

		if err := departmentRepo.SoftDelete(ctx, department); err != nil {
			return mapDepartmentLookupError(err, "failed to delete department")
		}
		deleted = department

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete department", slog.Any("departmentID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute department delete transaction")
	}

	srv.log(ctx).Info("Department deleted", slog.Any("departmentID", id))

	return deleted, nil
}

func mapDepartmentLookupError(err error, message string) error {
	if errors.Is(err, repository.ErrDepartmentNotFound) {
		return errors.Wrap(domainerrors.ErrDepartmentNotFound, message)
	}

	return errors.Wrap(err, message)
}

func distinctIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
