package service

import (
	"context"
	"errors"

	"peeko/internal/domain/entity"
)

// ErrInvalidSession is returned when a session token is missing, malformed, expired or revoked.
var ErrInvalidSession = errors.New("invalid session")

// SessionVerifier validates browser session tokens issued by the identity provider.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Session, error)
}
