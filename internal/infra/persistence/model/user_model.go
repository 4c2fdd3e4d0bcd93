package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Relation sets live in their own tables and are preloaded on demand.
type UserModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ExternalID  string     `gorm:"type:varchar(128);not null;uniqueIndex:idx_users_external_id"`
	Username    string     `gorm:"type:varchar(100);index"`
	FirstName   string     `gorm:"type:varchar(100)"`
	LastName    string     `gorm:"type:varchar(100)"`
	Email       string     `gorm:"type:varchar(255)"`
	PhoneNumber string     `gorm:"type:varchar(32)"`
	UserCode    string     `gorm:"type:char(6);not null;uniqueIndex:idx_users_user_code"`
	DeviceID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Friends          []FriendshipModel          `gorm:"foreignKey:UserID"`
	SentRequests     []FriendRequestModel       `gorm:"foreignKey:RequesterID"`
	ReceivedRequests []FriendRequestModel       `gorm:"foreignKey:TargetID"`
	AnimationBundles []UserAnimationBundleModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserAnimationBundleModel mirrors 'user_animation_bundles'. The composite key gives set semantics.
type UserAnimationBundleModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	BundleID  string    `gorm:"type:varchar(64);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAnimationBundleModel) TableName() string {
	return "user_animation_bundles"
}
