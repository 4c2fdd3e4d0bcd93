package handler

import (
	"log/slog"
	"net/http"

	"peeko/internal/delivery/api/response"
	deliverycontext "peeko/internal/delivery/context"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC   usecase.UserUsecase
	SocialUC usecase.SocialUsecase
	Logger   *slog.Logger
}

// UserHandler serves user lookups, search and per-user settings.
type UserHandler struct {
	userUC   usecase.UserUsecase
	socialUC usecase.SocialUsecase
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:   params.UserUC,
		socialUC: params.SocialUC,
		logger:   params.Logger,
	}
}

// AddBundleRequest represents the request body for unlocking an animation bundle
type AddBundleRequest struct {
	BundleID string `json:"bundleId" validate:"required"`
}

// Me returns the user behind the verified session
func (h *UserHandler) Me(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	user, err := h.userUC.GetByExternalID(c.Request().Context(), session.ExternalID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "user", user)
}

// SearchUsers handles free-text user search
func (h *UserHandler) SearchUsers(c echo.Context) error {
	users, err := h.userUC.SearchUsers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "users", users)
}

// GetByCode handles fetching a user by user code
func (h *UserHandler) GetByCode(c echo.Context) error {
	user, err := h.userUC.GetByCode(c.Request().Context(), c.Param("userCode"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "user", user)
}

// GetUserCodeQR renders the user code as a PNG for device pairing
func (h *UserHandler) GetUserCodeQR(c echo.Context) error {
	png, err := h.userUC.GetUserCodeQR(c.Request().Context(), c.Param("userCode"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetByExternalID handles fetching a user by identity-provider ID
func (h *UserHandler) GetByExternalID(c echo.Context) error {
	user, err := h.userUC.GetByExternalID(c.Request().Context(), c.Param("externalId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "user", user)
}

// GetFriends handles listing the friends of a user
func (h *UserHandler) GetFriends(c echo.Context) error {
	friends, err := h.socialUC.GetFriends(c.Request().Context(), c.Param("externalId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "users", friends)
}

// AddAnimationBundle handles unlocking an animation bundle for a user
func (h *UserHandler) AddAnimationBundle(c echo.Context) error {
	var req AddBundleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bundle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.userUC.AddAnimationBundle(c.Request().Context(), c.Param("externalId"), req.BundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "user", user)
}
