package auth

import (
	"net/http"
	"strconv"
	"time"

	"peeko/internal/errors"

	svix "github.com/svix/svix-webhooks/go"
)

// Headers of a signed identity-provider delivery.
const (
	HeaderWebhookID        = "svix-id"
	HeaderWebhookTimestamp = "svix-timestamp"
	HeaderWebhookSignature = "svix-signature"
)

// WebhookVerifier checks identity-provider deliveries signed in the Svix scheme: the svix-id,
// svix-timestamp and svix-signature headers over the raw body. Deliveries whose timestamp is
// outside the tolerance window are rejected, which bounds replays.
type WebhookVerifier struct {
	webhook *svix.Webhook
}

// NewWebhookVerifier parses a "whsec_" prefixed base64 signing secret.
func NewWebhookVerifier(secret string) (*WebhookVerifier, error) {
	if secret == "" {
		return nil, errors.New("webhook secret is required")
	}

	webhook, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, errors.Wrap(err, "invalid webhook secret")
	}

	return &WebhookVerifier{webhook: webhook}, nil
}

// Verify returns an error unless headers carry a valid, fresh signature of body.
func (v *WebhookVerifier) Verify(body []byte, headers http.Header) error {
	return errors.WithStack(v.webhook.Verify(body, headers))
}

// SignHeaders returns the headers the provider would send with body. Used by local tooling and tests.
func (v *WebhookVerifier) SignHeaders(id string, at time.Time, body []byte) (http.Header, error) {
	signature, err := v.webhook.Sign(id, at, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign webhook payload")
	}

	headers := http.Header{}
	headers.Set(HeaderWebhookID, id)
	headers.Set(HeaderWebhookTimestamp, strconv.FormatInt(at.Unix(), 10))
	headers.Set(HeaderWebhookSignature, signature)

	return headers, nil
}
