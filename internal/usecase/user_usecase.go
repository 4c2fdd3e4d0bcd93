// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"peeko/internal/domain/entity"
)

// --- Input DTOs ---

// UserProfileInput carries the identity-provider fields of a user.
type UserProfileInput struct {
	ExternalID  string
	Username    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CreateUser is idempotent on ExternalID. The boolean reports whether a new record was inserted.
	CreateUser(ctx context.Context, input *UserProfileInput) (*entity.User, bool, error)
	UpdateProfile(ctx context.Context, input *UserProfileInput) (*entity.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*entity.User, error)
	GetByCode(ctx context.Context, code string) (*entity.User, error)
	// SearchUsers returns an empty list for queries shorter than two characters.
	SearchUsers(ctx context.Context, query string) ([]*entity.User, error)
	AddAnimationBundle(ctx context.Context, externalID, bundleID string) (*entity.User, error)
	GetUserCodeQR(ctx context.Context, code string) ([]byte, error)
}
