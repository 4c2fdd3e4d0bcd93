package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Both the code and the owner are unique, so a user can pair at most one device.
type DeviceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code           string    `gorm:"type:char(6);not null;uniqueIndex:idx_devices_code"`
	Nickname       string    `gorm:"type:varchar(64)"`
	Mood           string    `gorm:"type:varchar(16);not null;default:'DEFAULT'"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_devices_user_id"`
	AssignedBundle *string   `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
