package handler

import (
	"log/slog"
	"net/http"

	"peeko/internal/delivery/api/response"
	"peeko/internal/domain/entity"
	"peeko/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for pairing a device
type RegisterDeviceRequest struct {
	Code     string `json:"code" validate:"required"`
	Nickname string `json:"nickname" validate:"max=64"`
}

// SetMoodRequest represents the request body for changing a device mood
type SetMoodRequest struct {
	Mood string `json:"mood" validate:"required"`
}

// RenameDeviceRequest represents the request body for renaming a device
type RenameDeviceRequest struct {
	Nickname string `json:"nickname" validate:"required,max=64"`
}

// AssignBundleRequest represents the request body for assigning an animation bundle
type AssignBundleRequest struct {
	BundleID string `json:"bundleId" validate:"required"`
}

// RegisterDevice handles device pairing
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), req.Code, req.Nickname)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "device", device)
}

// GetDevice handles fetching a device by its code
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	device, err := h.deviceUC.GetDevice(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "device", device)
}

// SetMood handles changing the mood shown by a device
func (h *DeviceHandler) SetMood(c echo.Context) error {
	var req SetMoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mood input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	device, err := h.deviceUC.SetMood(c.Request().Context(), c.Param("code"), entity.Mood(req.Mood))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "device", device)
}

// RenameDevice handles changing a device nickname
func (h *DeviceHandler) RenameDevice(c echo.Context) error {
	var req RenameDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid nickname input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	device, err := h.deviceUC.RenameDevice(c.Request().Context(), c.Param("code"), req.Nickname)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "device", device)
}

// AssignAnimationBundle handles selecting the animation bundle a device plays
func (h *DeviceHandler) AssignAnimationBundle(c echo.Context) error {
	var req AssignBundleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bundle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	device, err := h.deviceUC.AssignAnimationBundle(c.Request().Context(), c.Param("code"), req.BundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "device", device)
}
