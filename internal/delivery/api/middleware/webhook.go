package middleware

import (
	"bytes"
	"io"
	"log/slog"

	"peeko/config"
	domainerrors "peeko/internal/domain/errors"
	"peeko/internal/infra/auth"

	"github.com/labstack/echo/v4"
)

// WebhookSignature verifies identity-provider webhooks against the signing secret.
// Without a usable secret every delivery is rejected. The body is restored so handlers can bind it.
func WebhookSignature(cfg *config.Config, logger *slog.Logger) echo.MiddlewareFunc {
	var secret string
	if cfg.Auth != nil {
		secret = cfg.Auth.WebhookSecret
	}

	verifier, err := auth.NewWebhookVerifier(secret)
	if err != nil {
		logger.Warn("Identity webhooks disabled", slog.Any("error", err))
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if verifier == nil {
				return domainerrors.ErrInvalidSignature
			}

			req := c.Request()

			body, err := io.ReadAll(req.Body)
			if err != nil {
				return domainerrors.ErrValidationFailed.WrapMessage("failed to read webhook body")
			}
			_ = req.Body.Close()

			if err := verifier.Verify(body, req.Header); err != nil {
				return domainerrors.ErrInvalidSignature
			}

			req.Body = io.NopCloser(bytes.NewReader(body))

			return next(c)
		}
	}
}
