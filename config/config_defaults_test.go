package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "admin", cfg.Auth.AdminRole)
	assert.Equal(t, SessionProviderJWT, cfg.Auth.Session.Provider)
	assert.Equal(t, "__session", cfg.Auth.Session.CookieName)

	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, 5, cfg.Mongo.MaxRetry)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)

	require.NotNil(t, cfg.Social)
	assert.Equal(t, 20, cfg.Social.SearchLimit)
	assert.Equal(t, 10, cfg.Social.UserCodeAttempts)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{AdminRole: "operator"},
		Mongo:  &MongoConfig{MaxRetry: 2, ConnectTimeout: time.Second},
		Social: &SocialConfig{SearchLimit: 50},
	}
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.MaxRequestBodySize = "1M"
	cfg.Auth.Session.Provider = SessionProviderFirebase

	applyDefaults(cfg)

	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, "1M", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "operator", cfg.Auth.AdminRole)
	assert.Equal(t, SessionProviderFirebase, cfg.Auth.Session.Provider)
	assert.Equal(t, 2, cfg.Mongo.MaxRetry)
	assert.Equal(t, time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, 50, cfg.Social.SearchLimit)
}
