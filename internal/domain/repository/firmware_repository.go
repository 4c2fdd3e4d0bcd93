package repository

import (
	"context"
	"errors"

	"peeko/internal/domain/entity"
)

// Domain-specific errors for firmware persistence.
var (
	ErrFirmwareNotFound      = errors.New("firmware version not found")
	ErrDuplicateFirmwareNumber = errors.New("firmware version number already exists")
)

// FirmwareRepository persists published firmware versions.
type FirmwareRepository interface {
	Create(ctx context.Context, version *entity.FirmwareVersion) error

	// List returns all versions, newest number first.
	List(ctx context.Context) ([]*entity.FirmwareVersion, error)

	FindLatest(ctx context.Context) (*entity.FirmwareVersion, error)
}
