package handler

import (
	"github.com/labstack/echo/v4"

	"staffhub/internal/delivery/api/response"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
