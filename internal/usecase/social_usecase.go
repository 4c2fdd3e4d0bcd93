package usecase

import (
	"context"

	"peeko/internal/domain/entity"

	"github.com/google/uuid"
)

// SocialUsecase manages the friend-request lifecycle between users.
type SocialUsecase interface {
	// SendFriendRequest records a pending request from the requester to the target and returns the requester.
	SendFriendRequest(ctx context.Context, requesterExternalID string, targetID uuid.UUID) (*entity.User, error)
	// AcceptFriendRequest turns a pending request into a mutual friendship and returns the receiver.
	AcceptFriendRequest(ctx context.Context, receiverExternalID string, requesterID uuid.UUID) (*entity.User, error)
	GetFriends(ctx context.Context, externalID string) ([]*entity.User, error)
}
