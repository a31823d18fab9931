package handler

import (
	"log/slog"
	"net/http"

	"staffhub/internal/delivery/api/response"
	"staffhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DepartmentHandlerParams holds dependencies for DepartmentHandler, injected by Fx.
type DepartmentHandlerParams struct {
	fx.In

	DepartmentUC usecase.DepartmentUsecase
	Logger       *slog.Logger
}

// DepartmentHandler serves the /department routes.
type DepartmentHandler struct {
	departmentUC usecase.DepartmentUsecase
	logger       *slog.Logger
}

// NewDepartmentHandler is the constructor for DepartmentHandler
func NewDepartmentHandler(params DepartmentHandlerParams) *DepartmentHandler {
	return &DepartmentHandler{
		departmentUC: params.DepartmentUC,
		logger:       params.Logger,
	}
}

// CreateDepartmentRequest represents the request body for creating a department
type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

// EmployeeRef points at an existing employee by id.
type EmployeeRef struct {
	ID uint `json:"id" validate:"required,gt=0"`
}

// UpdateDepartmentRequest lists employees to attach to the department.
type UpdateDepartmentRequest struct {
	Employees []EmployeeRef `json:"employees" validate:"required,dive"`
}

func (h *DepartmentHandler) FindAll(c echo.Context) error {
	departments, err := h.departmentUC.FindAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toDepartmentResponses(departments))
}

func (h *DepartmentHandler) FindByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid department ID")
	}

	department, err := h.departmentUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toDepartmentResponse(department))
}

func (h *DepartmentHandler) Create(c echo.Context) error {
	var req CreateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid department input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	department, err := h.departmentUC.Create(c.Request().Context(), &usecase.CreateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toDepartmentResponse(department))
}

// Update attaches employees to the department.
func (h *DepartmentHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid department ID")
	}

	var req UpdateDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid department input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	employeeIDs := make([]uint, 0, len(req.Employees))
	for _, ref := range req.Employees {
		employeeIDs = append(employeeIDs, ref.ID)
	}

	department, err := h.departmentUC.Update(c.Request().Context(), id, &usecase.UpdateDepartmentInput{EmployeeIDs: employeeIDs})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toDepartmentResponse(department))
}

// Delete soft-deletes an empty department.
func (h *DepartmentHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid department ID")
	}

	department, err := h.departmentUC.Delete(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toDepartmentResponse(department))
}
