package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "peeko/internal/delivery/context"
	"peeko/internal/domain/entity"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/domain/repository"
	"peeko/internal/errors"
	"peeko/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface.
type messageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for MessageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewMessageService creates a new message service instance
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendMessage stores a message between two codes. The codes stay authoritative even when they do not
// resolve to a user yet; the user references are filled in when they do.
func (srv *messageService) SendMessage(ctx context.Context, input *usecase.SendMessageInput) (*entity.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domainerrors.ErrEmptyMessage
	}

	sourceType := input.SourceType
	if sourceType == "" {
		sourceType = entity.SourceTypeUser
	}
	if !sourceType.IsValid() {
		return nil, domainerrors.ErrInvalidSourceType.WrapMessage(string(sourceType))
	}

	msg := &entity.Message{
		SourceCode:      normalizeCode(input.SourceCode),
		DestinationCode: normalizeCode(input.DestinationCode),
		SourceType:      sourceType,
		Content:         content,
		Meta:            input.Meta,
	}
	if msg.SourceCode == "" || msg.DestinationCode == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("source and destination are required")
	}

	msg.SourceUserID = srv.lookupUserID(ctx, msg.SourceCode)
	msg.DestinationUserID = srv.lookupUserID(ctx, msg.DestinationCode)

	if err := srv.messageRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to store message")
	}

	srv.log(ctx).Debug("Message sent",
		slog.String("messageID", msg.ID),
		slog.String("source", msg.SourceCode),
		slog.String("destination", msg.DestinationCode),
	)

	return msg, nil
}

// lookupUserID resolves code to a user ID. Failures are logged and yield nil.
func (srv *messageService) lookupUserID(ctx context.Context, code string) *uuid.UUID {
	user, err := srv.userRepo.FindByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Failed to resolve user code", slog.String("code", code), slog.Any("error", err))
		}

		return nil
	}

	id := user.ID

	return &id
}

func (srv *messageService) FetchConversation(ctx context.Context, codeA, codeB string) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.FindConversation(ctx, normalizeCode(codeA), normalizeCode(codeB))
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch conversation")
	}

	return messages, nil
}

func (srv *messageService) MarkConversationRead(ctx context.Context, readerCode, partnerCode string) (int64, error) {
	updated, err := srv.messageRepo.MarkConversationRead(ctx, normalizeCode(readerCode), normalizeCode(partnerCode))
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark conversation read")
	}

	return updated, nil
}

// GetConversation returns the history and acknowledges the partner messages in it that were addressed
// to the reader. Messages stored after the read stay unopened for the device to claim.
// The returned messages already reflect the new read state.
func (srv *messageService) GetConversation(ctx context.Context, readerCode, partnerCode string) ([]*entity.Message, error) {
	reader, partner := normalizeCode(readerCode), normalizeCode(partnerCode)

	messages, err := srv.FetchConversation(ctx, reader, partner)
	if err != nil {
		return nil, err
	}

	var unread []*entity.Message
	for _, msg := range messages {
		if msg.SourceCode == partner && msg.DestinationCode == reader && !msg.Opened {
			unread = append(unread, msg)
		}
	}
	if len(unread) == 0 {
		return messages, nil
	}

	ids := make([]string, 0, len(unread))
	for _, msg := range unread {
		ids = append(ids, msg.ID)
	}

	if _, err := srv.messageRepo.MarkRead(ctx, ids); err != nil {
		return nil, errors.Wrap(err, "failed to mark conversation read")
	}

	for _, msg := range unread {
		msg.Opened = true
	}

	return messages, nil
}

// GetInbox summarises every conversation code takes part in.
func (srv *messageService) GetInbox(ctx context.Context, code string) ([]*entity.ConversationSummary, error) {
	owner := normalizeCode(code)

	messages, err := srv.messageRepo.FindByParticipant(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inbox messages")
	}

	users, err := srv.userRepo.FindByCodes(ctx, partnerCodes(owner, messages))
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve inbox partners", slog.String("code", owner), slog.Any("error", err))
		users = nil
	}

	return buildInbox(owner, messages, users), nil
}

// OpenMessage claims the oldest unopened message for code. Concurrent callers never receive the same message.
func (srv *messageService) OpenMessage(ctx context.Context, code string) (*entity.Message, error) {
	msg, err := srv.messageRepo.ClaimOldestUnread(ctx, normalizeCode(code))
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to open message")
	}

	return msg, nil
}
