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

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler serves the inbox, conversations and device message polling.
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// SendMessageRequest represents the request body for sending a message.
// Content is not marked required so blank content reaches the EMPTY_MESSAGE check.
type SendMessageRequest struct {
	Source      string         `json:"source" validate:"required"`
	Destination string         `json:"destination" validate:"required"`
	Content     string         `json:"content"`
	SourceType  string         `json:"sourceType"`
	Meta        map[string]any `json:"meta"`
}

// ConversationRequest represents the request body for loading a conversation.
// MarkRead defaults to true when omitted.
type ConversationRequest struct {
	UserA    string `json:"userA" validate:"required"`
	UserB    string `json:"userB" validate:"required"`
	MarkRead *bool  `json:"markRead"`
}

// MarkReadRequest represents the request body for acknowledging a conversation
type MarkReadRequest struct {
	Reader  string `json:"reader" validate:"required"`
	Partner string `json:"partner" validate:"required"`
}

// SendMessage handles storing a new message
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	message, err := h.messageUC.SendMessage(c.Request().Context(), &usecase.SendMessageInput{
		SourceCode:      req.Source,
		DestinationCode: req.Destination,
		Content:         req.Content,
		SourceType:      entity.SourceType(req.SourceType),
		Meta:            req.Meta,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, "message", message)
}

// GetConversation returns the history between userA and userB. Unless markRead is false,
// messages from userB to userA are marked read and returned as opened.
func (h *MessageHandler) GetConversation(c echo.Context) error {
	var req ConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid conversation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	ctx := c.Request().Context()

	var (
		messages []*entity.Message
		err      error
	)
	if req.MarkRead != nil && !*req.MarkRead {
		messages, err = h.messageUC.FetchConversation(ctx, req.UserA, req.UserB)
	} else {
		messages, err = h.messageUC.GetConversation(ctx, req.UserA, req.UserB)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "messages", messages)
}

// MarkConversationRead handles acknowledging every message the partner sent to the reader
func (h *MessageHandler) MarkConversationRead(c echo.Context) error {
	var req MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid read input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	updated, err := h.messageUC.MarkConversationRead(c.Request().Context(), req.Reader, req.Partner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "updated", updated)
}

// GetInbox handles listing one summary per conversation partner
func (h *MessageHandler) GetInbox(c echo.Context) error {
	summaries, err := h.messageUC.GetInbox(c.Request().Context(), c.Param("userCode"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "messages", summaries)
}

// OpenMessage hands the oldest unopened message to the polling device.
// An empty inbox yields {"message": null}.
func (h *MessageHandler) OpenMessage(c echo.Context) error {
	message, err := h.messageUC.OpenMessage(c.Request().Context(), c.Param("userCode"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, "message", message)
}
