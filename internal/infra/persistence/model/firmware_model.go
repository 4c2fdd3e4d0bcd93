package model

import (
	"time"

	"github.com/google/uuid"
)

// FirmwareVersionModel mirrors the 'firmware_versions' table.
type FirmwareVersionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Link        string    `gorm:"type:varchar(512);not null"`
	Number      int       `gorm:"not null;uniqueIndex:idx_firmware_versions_number"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FirmwareVersionModel) TableName() string {
	return "firmware_versions"
}

// All lists every model owned by the Postgres schema, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&UserAnimationBundleModel{},
		&FriendRequestModel{},
		&FriendshipModel{},
		&DeviceModel{},
		&FirmwareVersionModel{},
	}
}
