package handler

import (
	"trainbook/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
