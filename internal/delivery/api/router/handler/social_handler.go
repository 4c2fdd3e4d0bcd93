package handler

import (
	"log/slog"
	"net/http"

	"peeko/internal/delivery/api/response"
	"peeko/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SocialHandlerParams holds dependencies for SocialHandler, injected by Fx.
type SocialHandlerParams struct {
	fx.In

	SocialUC usecase.SocialUsecase
	Logger   *slog.Logger
}

// SocialHandler serves the friend-request endpoints.
type SocialHandler struct {
	socialUC usecase.SocialUsecase
	logger   *slog.Logger
}

// NewSocialHandler is the constructor for SocialHandler
func NewSocialHandler(params SocialHandlerParams) *SocialHandler {
	return &SocialHandler{
		socialUC: params.SocialUC,
		logger:   params.Logger,
	}
}

// FriendRequestRequest represents the request body for sending a friend request
type FriendRequestRequest struct {
	RequesterExternalID string `json:"requesterExternalId" validate:"required"`
}

// AcceptFriendRequestRequest represents the request body for accepting a friend request
type AcceptFriendRequestRequest struct {
	ReceiverExternalID string `json:"receiverExternalId" validate:"required"`
}

// SendFriendRequest handles a request from the body's requester to the :targetId user
func (h *SocialHandler) SendFriendRequest(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("targetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid target user ID")
	}

	var req FriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid friend request input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.socialUC.SendFriendRequest(c.Request().Context(), req.RequesterExternalID, targetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "user", user)
}

// AcceptFriendRequest handles the receiver accepting the :requesterId user's request
func (h *SocialHandler) AcceptFriendRequest(c echo.Context) error {
	requesterID, err := uuid.Parse(c.Param("requesterId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid requester user ID")
	}

	var req AcceptFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accept input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.socialUC.AcceptFriendRequest(c.Request().Context(), req.ReceiverExternalID, requesterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "user", user)
}
