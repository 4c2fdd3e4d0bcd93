package handler

import (
	"log/slog"
	"net/http"

	"peeko/internal/delivery/api/response"
	deliverycontext "peeko/internal/delivery/context"
	"peeko/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Identity-provider events handled by IdentityWebhook.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// WebhookHandler receives identity-provider events.
type WebhookHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// IdentityEventRequest is the signed payload posted by the identity provider.
type IdentityEventRequest struct {
	Type string            `json:"type" validate:"required"`
	Data IdentityEventUser `json:"data"`
}

// IdentityEventUser is the user object carried by identity events.
type IdentityEventUser struct {
	ID          string `json:"id" validate:"required"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// IdentityWebhook creates or updates the local user mirrored from the identity provider.
// Event types other than user.created and user.updated are acknowledged and ignored.
func (h *WebhookHandler) IdentityWebhook(c echo.Context) error {
	var req IdentityEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	ctx := c.Request().Context()
	input := &usecase.UserProfileInput{
		ExternalID:  req.Data.ID,
		Username:    req.Data.Username,
		FirstName:   req.Data.FirstName,
		LastName:    req.Data.LastName,
		Email:       req.Data.Email,
		PhoneNumber: req.Data.PhoneNumber,
	}

	switch req.Type {
	case EventUserCreated:
		user, created, err := h.userUC.CreateUser(ctx, input)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}

		return response.Success(c, status, "user", user)
	case EventUserUpdated:
		user, err := h.userUC.UpdateProfile(ctx, input)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, "user", user)
	default:
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Ignoring identity event", slog.String("type", req.Type))

		return response.Success(c, http.StatusOK, "user", nil)
	}
}
