package handler

import (
	"log/slog"
	"net/http"

	"peeko/internal/delivery/api/response"
	"peeko/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MaintenanceHandlerParams holds dependencies for MaintenanceHandler, injected by Fx.
type MaintenanceHandlerParams struct {
	fx.In

	MaintenanceUC usecase.MaintenanceUsecase
	Logger        *slog.Logger
}

// MaintenanceHandler exposes the repair pass to administrators.
type MaintenanceHandler struct {
	maintenanceUC usecase.MaintenanceUsecase
	logger        *slog.Logger
}

// NewMaintenanceHandler is the constructor for MaintenanceHandler
func NewMaintenanceHandler(params MaintenanceHandlerParams) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceUC: params.MaintenanceUC,
		logger:        params.Logger,
	}
}

// Reconcile runs the repair pass and returns what it fixed
func (h *MaintenanceHandler) Reconcile(c echo.Context) error {
	report, err := h.maintenanceUC.Reconcile(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "report", report)
}
