package handler

import (
	"log/slog"

	"staffhub/internal/delivery/api/response"
	"staffhub/internal/domain/entity"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmployeeHandlerParams holds dependencies for EmployeeHandler, injected by Fx.
type EmployeeHandlerParams struct {
	fx.In

	EmployeeUC usecase.EmployeeUsecase
	Logger     *slog.Logger
}

// EmployeeHandler serves the /employee routes.
type EmployeeHandler struct {
	employeeUC usecase.EmployeeUsecase
	logger     *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler
func NewEmployeeHandler(params EmployeeHandlerParams) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUC: params.EmployeeUC,
		logger:     params.Logger,
	}
}

// CreateEmployeeRequest represents the request body for creating an employee
type CreateEmployeeRequest struct {
	Email      string          `json:"email" validate:"required,email,max=255"`
	Name       string          `json:"name" validate:"required,max=255"`
	Address    *AddressRequest `json:"address" validate:"required"`
	Password   string          `json:"password" validate:"required"`
	Role       string          `json:"role" validate:"required,oneof=HR STAFF"`
	Department uint            `json:"department" validate:"required,gt=0"`
}

// UpdateEmployeeRequest represents a partial update. Present fields must not
// be empty, except password where "" keeps the stored hash.
type UpdateEmployeeRequest struct {
	Email      *string         `json:"email" validate:"omitnil,email,max=255"`
	Name       *string         `json:"name" validate:"omitnil,min=1,max=255"`
	Address    *AddressRequest `json:"address" validate:"omitnil"`
	Password   *string         `json:"password"`
	Role       *string         `json:"role" validate:"omitnil,oneof=HR STAFF"`
	Department *uint           `json:"department" validate:"omitnil,gt=0"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FindAll lists every active employee.
func (h *EmployeeHandler) FindAll(c echo.Context) error {
	employees, err := h.employeeUC.FindAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toEmployeeResponses(employees))
}

// FindByID returns a single employee.
func (h *EmployeeHandler) FindByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	employee, err := h.employeeUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toEmployeeResponse(employee))
}

// Create handles employee creation
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid employee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	employee, err := h.employeeUC.Create(c.Request().Context(), &usecase.CreateEmployeeInput{
		Email:        req.Email,
		Name:         req.Name,
		Address:      usecase.AddressInput{Line1: req.Address.Line1, Pincode: req.Address.Pincode},
		Password:     req.Password,
		Role:         entity.Role(req.Role),
		DepartmentID: req.Department,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toEmployeeResponse(employee))
}

// Update handles partial employee updates
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	var req UpdateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid employee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateEmployeeInput{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		DepartmentID: req.Department,
	}
	if req.Address != nil {
		input.Address = &usecase.AddressInput{Line1: req.Address.Line1, Pincode: req.Address.Pincode}
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	employee, err := h.employeeUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toEmployeeResponse(employee))
}

// Delete soft-deletes an employee and returns it.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid employee ID")
	}

	employee, err := h.employeeUC.Delete(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toEmployeeResponse(employee))
}

// Login exchanges email and password for a session token.
func (h *EmployeeHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.employeeUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, output.Token)
}
