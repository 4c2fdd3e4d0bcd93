package usecase

import (
	"context"

	"peeko/internal/domain/entity"
)

// PublishFirmwareInput defines the data required to publish a firmware build.
type PublishFirmwareInput struct {
	Name        string
	Link        string
	Number      int
	Description string
}

// FirmwareUsecase manages published device firmware.
type FirmwareUsecase interface {
	PublishVersion(ctx context.Context, input *PublishFirmwareInput) (*entity.FirmwareVersion, error)
	ListVersions(ctx context.Context) ([]*entity.FirmwareVersion, error)
	LatestVersion(ctx context.Context) (*entity.FirmwareVersion, error)
}
