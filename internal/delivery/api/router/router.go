// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"staffhub/internal/delivery/api/middleware"
	"staffhub/internal/delivery/api/router/handler"
	"staffhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EmployeeHandler   *handler.EmployeeHandler
	DepartmentHandler *handler.DepartmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	employeeHandler   *handler.EmployeeHandler
	departmentHandler *handler.DepartmentHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		employeeHandler:   params.EmployeeHandler,
		departmentHandler: params.DepartmentHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Reads and
// login are public; every mutation needs an HR session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	hrOnly := []echo.MiddlewareFunc{
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleHR),
	}

	employeeGroup := e.Group("/employee")
	{
		employeeGroup.POST("/login", r.employeeHandler.Login)
		employeeGroup.GET("", r.employeeHandler.FindAll)
		employeeGroup.GET("/:id", r.employeeHandler.FindByID)
		employeeGroup.POST("", r.employeeHandler.Create, hrOnly...)
		employeeGroup.PUT("/:id", r.employeeHandler.Update, hrOnly...)
		employeeGroup.DELETE("/:id", r.employeeHandler.Delete, hrOnly...)
	}

	departmentGroup := e.Group("/department")
	{
		departmentGroup.GET("", r.departmentHandler.FindAll)
		departmentGroup.GET("/:id", r.departmentHandler.FindByID)
		departmentGroup.POST("", r.departmentHandler.Create, hrOnly...)
		departmentGroup.PUT("/:id", r.departmentHandler.Update, hrOnly...)
		departmentGroup.DELETE("/:id", r.departmentHandler.Delete, hrOnly...)
	}
}
