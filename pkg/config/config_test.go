package config_test

import (
	"testing"
	"time"

	"postbase-backend/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "JWT_ACCESS_EXPIRY", "JWT_REFRESH_EXPIRY", "BCRYPT_COST"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %s", cfg.Port)
	}
	if cfg.JWTAccessExpiry != 168*time.Hour {
		t.Fatalf("expected default access expiry 168h, got %s", cfg.JWTAccessExpiry)
	}
	if cfg.JWTRefreshExpiry != 720*time.Hour {
		t.Fatalf("expected default refresh expiry 720h, got %s", cfg.JWTRefreshExpiry)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.IsProduction() {
		t.Fatal("default env must not be production")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_ACCESS_EXPIRY", "15m")
	t.Setenv("BCRYPT_COST", "4")

	cfg := config.Load()

	if !cfg.IsProduction() {
		t.Fatal("expected production mode")
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.JWTAccessExpiry != 15*time.Minute {
		t.Fatalf("expected 15m access expiry, got %s", cfg.JWTAccessExpiry)
	}
	if cfg.BcryptCost != 4 {
		t.Fatalf("expected bcrypt cost 4, got %d", cfg.BcryptCost)
	}
}
