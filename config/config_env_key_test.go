package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"deviceApiKey": "",
			"session": map[string]any{
				"cookieName": "",
			},
		},
		"rateLimit": map[string]any{
			"redisAddr": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_DEVICEAPIKEY", want: "auth.deviceApiKey"},
		{envKey: "AUTH_SESSION_COOKIENAME", want: "auth.session.cookieName"},
		{envKey: "RATELIMIT_REDISADDR", want: "rateLimit.redisAddr"},
		{envKey: "MONGO_URI", want: "mongo.uri"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, SessionProviderJWT, cfg.Auth.Session.Provider)
	assert.Equal(t, "__session", cfg.Auth.Session.CookieName)
	assert.Equal(t, 5, cfg.Mongo.MaxRetry)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, 20, cfg.Social.SearchLimit)
	assert.Equal(t, 10, cfg.Social.UserCodeAttempts)
}

func TestApplyDefaults_KeepsConfiguredSessionAndSocialValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{AdminRole: "staff", Session: SessionConfig{Provider: SessionProviderFirebase, CookieName: "sid"}},
		Social: &SocialConfig{SearchLimit: 5, UserCodeAttempts: 3},
	}
	applyDefaults(cfg)

	assert.Equal(t, "staff", cfg.Auth.AdminRole)
	assert.Equal(t, SessionProviderFirebase, cfg.Auth.Session.Provider)
	assert.Equal(t, "sid", cfg.Auth.Session.CookieName)
	assert.Equal(t, 5, cfg.Social.SearchLimit)
	assert.Equal(t, 3, cfg.Social.UserCodeAttempts)
}
