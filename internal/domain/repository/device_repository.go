package repository

import (
	"context"
	"errors"

	"peeko/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the user or the code already has a device.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device. It returns ErrDuplicateDevice on unique violations.
	Create(ctx context.Context, device *entity.Device) error

	FindByCode(ctx context.Context, code string) (*entity.Device, error)

	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Device, error)

	// UpdateMood, UpdateNickname and AssignBundle return ErrDeviceNotFound when no device has the code.
	UpdateMood(ctx context.Context, code string, mood entity.Mood) error

	UpdateNickname(ctx context.Context, code, nickname string) error

	AssignBundle(ctx context.Context, code, bundleID string) error

	// RepairUserLinks aligns users.device_id with the devices that reference each user.
	RepairUserLinks(ctx context.Context) (int64, error)
}
