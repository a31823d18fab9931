// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "staffhub/internal/delivery/context"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/repository"
	"staffhub/internal/domain/service"
	"staffhub/internal/errors"
	"staffhub/internal/usecase"

	"go.uber.org/fx"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	txManager    repository.TransactionManager
	employeeRepo repository.EmployeeRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// EmployeeServiceParams holds dependencies for EmployeeService, injected by Fx.
type EmployeeServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	EmployeeRepo repository.EmployeeRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(params EmployeeServiceParams) usecase.EmployeeUsecase {
	return &employeeService{
		txManager:    params.TxManager,
		employeeRepo: params.EmployeeRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *employeeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindAll returns every non-deleted employee.
func (srv *employeeService) FindAll(ctx context.Context) ([]*entity.Employee, error) {
	employees, err := srv.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	return employees, nil
}

// FindByID returns a single employee or ErrEmployeeNotFound.
func (srv *employeeService) FindByID(ctx context.Context, id uint) (*entity.Employee, error) {
	employee, err := srv.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapEmployeeLookupError(err, "failed to find employee")
	}

	return employee, nil
}

// Create persists a new employee with its address and returns it reloaded
// with its department.
func (srv *employeeService) Create(ctx context.Context, input *usecase.CreateEmployeeInput) (*entity.Employee, error) {
	passwordHash, err := srv.hashIfPresent(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	employee := &entity.Employee{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: passwordHash,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		Address: &entity.Address{
			Line1:   input.Address.Line1,
			Pincode: input.Address.Pincode,
		},
	}

	var created *entity.Employee
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireActiveDepartment(ctx, repoFactory.DepartmentRepo(), employee.DepartmentID); err != nil {
			return err
		}

		employeeRepo := repoFactory.EmployeeRepo()
		if err := employeeRepo.Create(ctx, employee); err != nil {
			return errors.Wrap(err, "failed to create employee")
		}

		reloaded, err := employeeRepo.FindByID(ctx, employee.ID)
		if err != nil {
			return mapEmployeeLookupError(err, "failed to reload created employee")
		}
		created = reloaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create employee", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute employee creation transaction")
	}

	srv.log(ctx).Info("Employee created", slog.Any("employeeID", created.ID), slog.Any("departmentID", created.DepartmentID))

	return created, nil
}

// Update merges the present fields of input onto the stored employee.
func (srv *employeeService) Update(ctx context.Context, id uint, input *usecase.UpdateEmployeeInput) (*entity.Employee, error) {
	changes, err := srv.buildChanges(input)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("employeeID", id), slog.Any("error", err))

		return nil, err
	}

	var updated *entity.Employee
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()

		employee, err := employeeRepo.FindByID(ctx, id)
		if err != nil {
			return mapEmployeeLookupError(err, "failed to find employee for update")
		}

		if changes.DepartmentID != nil {
			if err := requireActiveDepartment(ctx, repoFactory.DepartmentRepo(), *changes.DepartmentID); err != nil {
				return err
			}
		}

		employee.ApplyChanges(changes)

		if err := employeeRepo.Update(ctx, employee); err != nil {
			return errors.Wrap(err, "failed to update employee")
		}

		reloaded, err := employeeRepo.FindByID(ctx, id)
		if err != nil {
			return mapEmployeeLookupError(err, "failed to reload updated employee")
		}
		updated = reloaded

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update employee", slog.Any("employeeID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute employee update transaction")
	}

	srv.log(ctx).Info("Employee updated", slog.Any("employeeID", id))

	return updated, nil
}

// Delete soft-deletes the employee together with its address.
func (srv *employeeService) Delete(ctx context.Context, id uint) (*entity.Employee, error) {
	var deleted *entity.Employee
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		employeeRepo := repoFactory.EmployeeRepo()

		employee, err := employeeRepo.FindByID(ctx, id)
		if err != nil {
			return mapEmployeeLookupError(err, "failed to find employee for delete")
		}

		if err := employeeRepo.SoftDelete(ctx, employee); err != nil {
			return mapEmployeeLookupError(err, "failed to delete employee")
		}
		deleted = employee

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete employee", slog.Any("employeeID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute employee delete transaction")
	}

	srv.log(ctx).Info("Employee deleted", slog.Any("employeeID", id))

	return deleted, nil
}

// Login verifies the password of the employee owning email and issues a session token.
func (srv *employeeService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	employee, err := srv.employeeRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login for unknown email", slog.String("email", input.Email))

		return nil, mapEmployeeLookupError(err, "failed to find employee by email")
	}

	if !srv.hasher.Check(input.Password, employee.PasswordHash) {
		srv.log(ctx).Warn("Incorrect password on login", slog.Any("employeeID", employee.ID))

		return nil, errors.WithStack(domainerrors.ErrIncorrectPassword)
	}

	token, err := srv.tokenService.GenerateToken(service.Identity{
		EmployeeID: employee.ID,
		Name:       employee.Name,
		Role:       employee.Role,
		Email:      employee.Email,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Debug("Employee logged in", slog.Any("employeeID", employee.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// hashIfPresent hashes a non-empty password. An empty password is kept as "".
func (srv *employeeService) hashIfPresent(password string) (string, error) {
	if password == "" {
		return "", nil
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed.WithDetails(err.Error()), "failed to hash password")
	}

	return hash, nil
}

func (srv *employeeService) buildChanges(input *usecase.UpdateEmployeeInput) (entity.EmployeeChanges, error) {
	changes := entity.EmployeeChanges{
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
	}
	if input.Address != nil {
		changes.Address = &entity.AddressChanges{
			Line1:   input.Address.Line1,
			Pincode: input.Address.Pincode,
		}
	}

	// An empty password keeps the stored hash.
	if input.Password != nil && *input.Password != "" {
		hash, err := srv.hashIfPresent(*input.Password)
		if err != nil {
			return entity.EmployeeChanges{}, err
		}
		changes.PasswordHash = &hash
	}

	return changes, nil
}

// requireActiveDepartment fails with ErrDepartmentNotFound for missing and
// soft-deleted departments. The foreign key alone accepts both.
func requireActiveDepartment(ctx context.Context, departmentRepo repository.DepartmentRepository, id uint) error {
	if _, err := departmentRepo.FindByID(ctx, id); err != nil {
		return mapDepartmentLookupError(err, "failed to find department for employee")
	}

	return nil
}

func mapEmployeeLookupError(err error, message string) error {
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return errors.Wrap(domainerrors.ErrEmployeeNotFound, message)
	}

	return errors.Wrap(err, message)
}
