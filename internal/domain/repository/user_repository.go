// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"peeko/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateExternalID is returned when a user with the same identity-provider ID already exists.
	ErrDuplicateExternalID = errors.New("external id already exists")
	// ErrDuplicateUserCode is returned when the generated user code collides with an existing one.
	ErrDuplicateUserCode = errors.New("user code already exists")
)

// UserRepository defines the standard operations for user persistence.
// Reads by a single key return the user with its friend, request and bundle sets loaded.
type UserRepository interface {
	// Create persists a new user. It returns ErrDuplicateExternalID or ErrDuplicateUserCode on unique violations.
	Create(ctx context.Context, user *entity.User) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	FindByCode(ctx context.Context, code string) (*entity.User, error)

	// FindByCodes resolves many codes at once. Unknown codes are skipped; relation sets are not loaded.
	FindByCodes(ctx context.Context, codes []string) ([]*entity.User, error)

	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Search matches query case-insensitively against username, first name, last name and user code.
	Search(ctx context.Context, query string, limit int) ([]*entity.User, error)

	// UpdateProfile overwrites the display and contact fields of the user with user.ExternalID.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// SetDevice stores the device back-reference on the user.
	SetDevice(ctx context.Context, userID, deviceID uuid.UUID) error

	// AddAnimationBundle adds bundleID to the user's bundle set. Adding an existing bundle is a no-op.
	AddAnimationBundle(ctx context.Context, userID uuid.UUID, bundleID string) error

	// LockForUpdate holds row locks on the users for the rest of the transaction.
	// It returns ErrUserNotFound when any of them does not exist.
	LockForUpdate(ctx context.Context, ids []uuid.UUID) error
}
