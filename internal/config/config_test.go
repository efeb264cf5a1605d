package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"WEB_PORT", "PORT", "SESSION_SECRET", "COOKIE_SECURE", "STORE_DRIVER", "DATABASE_URL",
	"PASSWORD_HASH", "BCRYPT_COST", "TIMEZONE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"TRUSTED_PROXIES",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.WebPort)
	assert.Equal(t, "50051", cfg.GRPCPort)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "sha256", cfg.PasswordHash)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, time.Local, cfg.Location)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("WEB_PORT", "9000")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/clinic")
	t.Setenv("PASSWORD_HASH", "bcrypt")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("TRUSTED_PROXIES", " 10.0.0.0/8, ,192.168.1.7")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.WebPort)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "Europe/Berlin", cfg.Location.String())
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.7"}, cfg.TrustedProxies)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{"SESSION_SECRET": ""}},
		{"postgres without url", map[string]string{"STORE_DRIVER": "postgres"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"unknown hash", map[string]string{"PASSWORD_HASH": "md5"}},
		{"cost too low", map[string]string{"BCRYPT_COST": "2"}},
		{"cost not a number", map[string]string{"BCRYPT_COST": "ten"}},
		{"bad timezone", map[string]string{"TIMEZONE": "Mars/Olympus"}},
		{"zero burst", map[string]string{"RATE_LIMIT_BURST": "0"}},
		{"bad bool", map[string]string{"COOKIE_SECURE": "maybe"}},
		{"bad proxy", map[string]string{"TRUSTED_PROXIES": "10.0.0.1,proxy.local"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SESSION_SECRET", "s3cret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := fromEnv()
			assert.Error(t, err)
		})
	}
}
