package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "5000"
	defaultDatabaseURL  = "doctors_portal.db"
	defaultJWTSecret    = "change-me-access-token-secret"
	defaultJWTAccessTTL = "1h"
	defaultEmailFrom    = "noreply@doctorsportal.example"
	defaultLogLevel     = "info"
)

type Config struct {
	AppEnv          string
	Port            string
	DatabaseURL     string
	JWTSecret       string
	JWTAccessTTL    time.Duration
	SendGridAPIKey  string
	EmailFrom       string
	EmailFromName   string
	StripeSecretKey string
	LogLevel        string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", defaultPort),
		DatabaseURL:     getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:       strings.TrimSpace(getEnv("ACCESS_TOKEN_SECRET", defaultJWTSecret)),
		SendGridAPIKey:  strings.TrimSpace(os.Getenv("SENDGRID_API_KEY")),
		EmailFrom:       getEnv("EMAIL_FROM", defaultEmailFrom),
		EmailFromName:   getEnv("EMAIL_FROM_NAME", "Doctors Portal"),
		StripeSecretKey: strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY")),
		LogLevel:        getEnv("LOG_LEVEL", defaultLogLevel),
	}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("config: ACCESS_TOKEN_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", name, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive", name)
	}
	return d, nil
}
