package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the ":id" path parameter as a positive integer.
func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}
