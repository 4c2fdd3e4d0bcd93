package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWebhookSecret  = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"
	otherWebhookSecret = "whsec_cGVla28tZGV2LXdlYmhvb2stc2lnbmluZy1rZXkhIQ=="
)

func TestNewWebhookVerifier_RejectsUnusableSecrets(t *testing.T) {
	_, err := NewWebhookVerifier("")
	assert.Error(t, err)

	_, err = NewWebhookVerifier("whsec_not base64!")
	assert.Error(t, err)
}

func TestWebhookVerifier_Verify(t *testing.T) {
	verifier, err := NewWebhookVerifier(testWebhookSecret)
	require.NoError(t, err)
	other, err := NewWebhookVerifier(otherWebhookSecret)
	require.NoError(t, err)

	body := []byte(`{"type":"user.created","data":{"id":"user_1"}}`)
	now := time.Now()

	tests := []struct {
		name    string
		headers func(t *testing.T) http.Header
		body    []byte
		wantErr bool
	}{
		{
			name: "fresh delivery",
			headers: func(t *testing.T) http.Header {
				h, err := verifier.SignHeaders("msg_1", now, body)
				require.NoError(t, err)

				return h
			},
			body: body,
		},
		{
			name: "signed by another secret",
			headers: func(t *testing.T) http.Header {
				h, err := other.SignHeaders("msg_1", now, body)
				require.NoError(t, err)

				return h
			},
			body:    body,
			wantErr: true,
		},
		{
			name: "body changed after signing",
			headers: func(t *testing.T) http.Header {
				h, err := verifier.SignHeaders("msg_1", now, body)
				require.NoError(t, err)

				return h
			},
			body:    []byte(`{"type":"user.updated","data":{"id":"user_1"}}`),
			wantErr: true,
		},
		{
			name: "replayed after the tolerance window",
			headers: func(t *testing.T) http.Header {
				h, err := verifier.SignHeaders("msg_1", now.Add(-time.Hour), body)
				require.NoError(t, err)

				return h
			},
			body:    body,
			wantErr: true,
		},
		{
			name: "message id swapped",
			headers: func(t *testing.T) http.Header {
				h, err := verifier.SignHeaders("msg_1", now, body)
				require.NoError(t, err)
				h.Set(HeaderWebhookID, "msg_2")

				return h
			},
			body:    body,
			wantErr: true,
		},
		{
			name:    "unsigned",
			headers: func(*testing.T) http.Header { return http.Header{} },
			body:    body,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifier.Verify(tt.body, tt.headers(t))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)
		})
	}
}
