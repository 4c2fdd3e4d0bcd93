package repository

import (
	"context"
	"errors"

	"peeko/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when no message matches, e.g. nothing left to claim.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository persists messages exchanged between user codes.
type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// FindConversation returns every message between the two codes in either direction, oldest first.
	FindConversation(ctx context.Context, codeA, codeB string) ([]*entity.Message, error)

	// FindByParticipant returns every message where code is the source or the destination.
	FindByParticipant(ctx context.Context, code string) ([]*entity.Message, error)

	// MarkConversationRead flags every unopened partner-to-reader message as opened and returns the count.
	MarkConversationRead(ctx context.Context, readerCode, partnerCode string) (int64, error)

	// MarkRead flags the listed messages as opened and returns how many were still unopened.
	MarkRead(ctx context.Context, ids []string) (int64, error)

	// ClaimOldestUnread atomically flags the oldest unopened message addressed to code as opened
	// and returns it. It returns ErrMessageNotFound when there is nothing to claim.
	ClaimOldestUnread(ctx context.Context, code string) (*entity.Message, error)

	// FindCodesMissingUserRefs lists, in ascending order, up to limit distinct codes greater than after
	// whose messages lack a resolved user reference.
	FindCodesMissingUserRefs(ctx context.Context, after string, limit int) ([]string, error)

	// SetUserRefs fills the missing source and destination user references for code.
	SetUserRefs(ctx context.Context, code string, userID uuid.UUID) (int64, error)
}
