// Package handler contains the echo handlers of the API delivery.
package handler

import (
	"net/http"

	"peeko/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "status", "ok")
}
