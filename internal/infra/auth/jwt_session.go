// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"peeko/internal/domain/entity"
	"peeko/internal/domain/service"
	"peeko/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the payload of an HS256 session token: the subject is the identity-provider user ID.
type sessionClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// jwtSessionVerifier verifies HS256 session tokens signed with a shared secret.
type jwtSessionVerifier struct {
	secret []byte
	issuer string
}

// NewJWTSessionVerifier creates a verifier for tokens signed with secret. An empty issuer skips the iss check.
func NewJWTSessionVerifier(secret, issuer string) (service.SessionVerifier, error) {
	if secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionVerifier{secret: []byte(secret), issuer: issuer}, nil
}

// Verify checks signature, algorithm, expiry and issuer, and returns the session subject and role.
func (v *jwtSessionVerifier) Verify(_ context.Context, tokenString string) (*entity.Session, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidSession, "failed to parse session token")
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidSession, "session token has no subject")
	}

	return &entity.Session{ExternalID: claims.Subject, Role: claims.Role}, nil
}

// SignSessionToken issues an HS256 session token. It backs local tooling and tests.
func SignSessionToken(secret, issuer, externalID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   externalID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}
