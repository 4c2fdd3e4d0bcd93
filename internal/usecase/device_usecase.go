package usecase

import (
	"context"

	"peeko/internal/domain/entity"
)

// DeviceUsecase defines the interface for device pairing and configuration.
type DeviceUsecase interface {
	// RegisterDevice pairs a new device with the owner of code.
	RegisterDevice(ctx context.Context, code, nickname string) (*entity.Device, error)
	GetDevice(ctx context.Context, code string) (*entity.Device, error)
	SetMood(ctx context.Context, code string, mood entity.Mood) (*entity.Device, error)
	RenameDevice(ctx context.Context, code, nickname string) (*entity.Device, error)
	AssignAnimationBundle(ctx context.Context, code, bundleID string) (*entity.Device, error)
}
