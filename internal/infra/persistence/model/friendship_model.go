package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendRequestModel mirrors 'friend_requests': one row per pending requester -> target edge.
type FriendRequestModel struct {
	RequesterID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TargetID    uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_friend_requests_target_id"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendRequestModel) TableName() string {
	return "friend_requests"
}

// FriendshipModel mirrors 'friendships'. Each friendship is two rows, (a, b) and (b, a).
type FriendshipModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FriendID  uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_friendships_friend_id"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}
