package handler

import (
	"log/slog"
	"net/http"

	"peeko/internal/delivery/api/response"
	"peeko/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FirmwareHandlerParams holds dependencies for FirmwareHandler, injected by Fx.
type FirmwareHandlerParams struct {
	fx.In

	FirmwareUC usecase.FirmwareUsecase
	Logger     *slog.Logger
}

// FirmwareHandler serves firmware publishing and the device version check.
type FirmwareHandler struct {
	firmwareUC usecase.FirmwareUsecase
	logger     *slog.Logger
}

// NewFirmwareHandler is the constructor for FirmwareHandler
func NewFirmwareHandler(params FirmwareHandlerParams) *FirmwareHandler {
	return &FirmwareHandler{
		firmwareUC: params.FirmwareUC,
		logger:     params.Logger,
	}
}

// PublishFirmwareRequest represents the request body for publishing a firmware build
type PublishFirmwareRequest struct {
	Name        string `json:"name" validate:"required"`
	Link        string `json:"link" validate:"required,url"`
	Number      int    `json:"number" validate:"required,gt=0"`
	Description string `json:"description"`
}

// LatestVersion handles the device version check
func (h *FirmwareHandler) LatestVersion(c echo.Context) error {
	version, err := h.firmwareUC.LatestVersion(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "version", version)
}

// ListVersions handles listing every published build
func (h *FirmwareHandler) ListVersions(c echo.Context) error {
	versions, err := h.firmwareUC.ListVersions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "versions", versions)
}

// PublishVersion handles publishing a new build
func (h *FirmwareHandler) PublishVersion(c echo.Context) error {
	var req PublishFirmwareRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid firmware input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	version, err := h.firmwareUC.PublishVersion(c.Request().Context(), &usecase.PublishFirmwareInput{
		Name:        req.Name,
		Link:        req.Link,
		Number:      req.Number,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "version", version)
}
