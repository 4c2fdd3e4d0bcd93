package usecase

import (
	"context"

	"peeko/internal/domain/entity"
)

// SendMessageInput defines the data required to send a message.
type SendMessageInput struct {
	SourceCode      string
	DestinationCode string
	Content         string
	SourceType      entity.SourceType
	Meta            map[string]any
}

// MessageUsecase covers sending, reading and acknowledging messages.
type MessageUsecase interface {
	SendMessage(ctx context.Context, input *SendMessageInput) (*entity.Message, error)
	// FetchConversation returns the history between two codes, oldest first, without side effects.
	FetchConversation(ctx context.Context, codeA, codeB string) ([]*entity.Message, error)
	// MarkConversationRead opens every message the partner sent to the reader and returns the count.
	MarkConversationRead(ctx context.Context, readerCode, partnerCode string) (int64, error)
	// GetConversation fetches the history and then marks it read for readerCode.
	GetConversation(ctx context.Context, readerCode, partnerCode string) ([]*entity.Message, error)
	GetInbox(ctx context.Context, code string) ([]*entity.ConversationSummary, error)
	// OpenMessage claims the oldest unopened message addressed to code. It returns nil when none is left.
	OpenMessage(ctx context.Context, code string) (*entity.Message, error)
}
