// Package config reads process settings from the environment, after loading
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	WebPort  string
	GRPCPort string

	SessionSecret string
	CookieSecure  bool

	StoreDriver string // memory | postgres
	DatabaseURL string

	PasswordHash string // sha256 | bcrypt
	BcryptCost   int

	Location *time.Location

	RateLimitRPS   float64
	RateLimitBurst int

	// IPs or CIDRs allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
}

// Load reads .env if present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		WebPort:       env("WEB_PORT", "8080"),
		GRPCPort:      env("PORT", "50051"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		StoreDriver:   env("STORE_DRIVER", "memory"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		PasswordHash:  env("PASSWORD_HASH", "sha256"),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("config: SESSION_SECRET is required")
	}

	switch cfg.StoreDriver {
	case "memory":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("config: DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("config: STORE_DRIVER must be memory or postgres, got %q", cfg.StoreDriver)
	}

	if cfg.PasswordHash != "sha256" && cfg.PasswordHash != "bcrypt" {
		return nil, fmt.Errorf("config: PASSWORD_HASH must be sha256 or bcrypt, got %q", cfg.PasswordHash)
	}

	var err error
	if cfg.BcryptCost, err = envInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}
	if cfg.CookieSecure, err = envBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = envFloat("RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = envInt("RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return nil, errors.New("config: RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	if cfg.TrustedProxies, err = envList("TRUSTED_PROXIES"); err != nil {
		return nil, err
	}

	cfg.Location = time.Local
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		if cfg.Location, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("config: TIMEZONE: %w", err)
		}
	}

	return cfg, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

// envList reads a comma separated list of IPs or CIDRs.
func envList(key string) ([]string, error) {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, _, err := net.ParseCIDR(v); err != nil && net.ParseIP(v) == nil {
			return nil, fmt.Errorf("config: %s: %q is not an IP or CIDR", key, v)
		}
		out = append(out, v)
	}
	return out, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
