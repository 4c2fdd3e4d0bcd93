package repository

import (
	"context"

	"peeko/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendshipRepository persists pending friend requests and mutual friendships.
// A friendship is stored as two directed rows that are always written together.
type FriendshipRepository interface {
	// CreateRequest records a pending request. It reports false when the edge already existed.
	CreateRequest(ctx context.Context, requesterID, targetID uuid.UUID) (bool, error)

	// DeleteRequest removes the pending edge and reports whether it was present.
	// Callers use the result as the atomic remove-if-present precondition of an accept.
	DeleteRequest(ctx context.Context, requesterID, targetID uuid.UUID) (bool, error)

	// AreFriends reports whether a friendship row links the two users in either direction.
	AreFriends(ctx context.Context, userID, otherID uuid.UUID) (bool, error)

	// CreateFriendship inserts both directed rows. Existing rows are left untouched.
	CreateFriendship(ctx context.Context, userID, otherID uuid.UUID) error

	// FindFriends returns the friends of userID in the order the friendships were made.
	FindFriends(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)

	// RestoreMirrors inserts the missing reverse row of every one-sided friendship.
	RestoreMirrors(ctx context.Context) (int64, error)

	// ResolveMutualRequests turns every pair of opposite pending requests into a friendship and
	// returns the number of requests consumed.
	ResolveMutualRequests(ctx context.Context) (int64, error)

	// PurgeResolvedRequests deletes pending requests between users who are already friends.
	PurgeResolvedRequests(ctx context.Context) (int64, error)
}
