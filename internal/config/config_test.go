package config

import (
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Pin the variables under test so ambient env cannot leak in.
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USERNAME", "root")
	t.Setenv("DB_NAME", "adnow")
	t.Setenv("PORT", "5002")
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_EXPIRATION_MINUTES", "15")
	t.Setenv("JWT_REFRESH_EXPIRATION_HOURS", "168")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Port != "5002" {
		t.Fatalf("expected port 5002, got %s", cfg.Port)
	}
	if cfg.JWTExpirationMinutes != 15 {
		t.Fatalf("expected 15 minute access tokens, got %d", cfg.JWTExpirationMinutes)
	}
	if !strings.Contains(cfg.Database.DSN, "tcp(localhost:3306)/adnow") {
		t.Fatalf("unexpected DSN: %s", cfg.Database.DSN)
	}
	if !strings.Contains(cfg.Database.DSN, "parseTime=True") {
		t.Fatalf("DSN must enable parseTime for GORM time columns: %s", cfg.Database.DSN)
	}
}

func TestLoadConfigRejectsBadDurations(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "fifteen")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for non-numeric JWT_EXPIRATION_MINUTES")
	}
}
