package auth

import (
	"context"

	"peeko/config"
	"peeko/internal/domain/entity"
	"peeko/internal/domain/service"
	"peeko/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

const roleClaim = "role"

// firebaseSessionVerifier verifies Firebase session cookies and rejects revoked sessions.
type firebaseSessionVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseSessionVerifier initialises the Firebase Admin SDK from the configured credentials.
func NewFirebaseSessionVerifier(ctx context.Context, cfg *config.FirebaseConfig) (service.SessionVerifier, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required for the firebase session provider")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseSessionVerifier{client: client}, nil
}

func (v *firebaseSessionVerifier) Verify(ctx context.Context, cookie string) (*entity.Session, error) {
	token, err := v.client.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSession, err.Error())
	}

	role, _ := token.Claims[roleClaim].(string)

	return &entity.Session{ExternalID: token.UID, Role: role}, nil
}
