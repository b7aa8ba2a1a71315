package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(env(nil))
	assert.Equal(t, Config{
		Port:               "8080",
		DataDir:            "./data",
		Env:                "development",
		LoginRatePerMinute: 20,
		CookieSecure:       false,
		SessionIdle:        24 * time.Hour,
	}, cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(env(map[string]string{
		"PORT":                  "9000",
		"DATA_DIR":              "/var/lib/nexus",
		"APP_ENV":               "production",
		"LOGIN_RATE_PER_MINUTE": "5",
		"COOKIE_SECURE":         "true",
		"SESSION_IDLE":          "30m",
	}))
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/var/lib/nexus", cfg.DataDir)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 5, cfg.LoginRatePerMinute)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
}

func TestFromEnvBadRateFallsBack(t *testing.T) {
	cfg := FromEnv(env(map[string]string{"LOGIN_RATE_PER_MINUTE": "lots"}))
	assert.Equal(t, 20, cfg.LoginRatePerMinute)
}

func TestFromEnvBadSessionIdleFallsBack(t *testing.T) {
	cfg := FromEnv(env(map[string]string{"SESSION_IDLE": "soon"}))
	assert.Equal(t, 24*time.Hour, cfg.SessionIdle)
}
