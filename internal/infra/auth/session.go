package auth

import (
	"context"

	"peeko/config"
	"peeko/internal/domain/service"
	"peeko/internal/errors"
)

// NewSessionVerifier builds the verifier selected by auth.session.provider.
func NewSessionVerifier(ctx context.Context, cfg *config.Config) (service.SessionVerifier, error) {
	session := cfg.Auth.Session

	switch session.Provider {
	case config.SessionProviderJWT:
		return NewJWTSessionVerifier(session.Secret, session.Issuer)
	case config.SessionProviderFirebase:
		return NewFirebaseSessionVerifier(ctx, cfg.Firebase)
	default:
		return nil, errors.Errorf("unknown session provider: %s", session.Provider)
	}
}
