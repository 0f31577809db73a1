package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "root:pw@tcp(127.0.0.1:3306)/jobtrack?parseTime=true")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.TokenExpiry != 168*time.Hour {
		t.Errorf("TokenExpiry = %v, want 168h", cfg.TokenExpiry)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout)
	}
}

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("DATABASE_DSN", "root:pw@tcp(127.0.0.1:3306)/jobtrack?parseTime=true")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for missing JWT_SECRET")
	}
}

func TestLoad_MissingDSNIsFatal(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for missing DATABASE_DSN")
	}
}

func TestLoad_MultipleOrigins(t *testing.T) {
	t.Setenv("DATABASE_DSN", "root:pw@tcp(127.0.0.1:3306)/jobtrack?parseTime=true")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com,http://localhost:5173")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("AllowedOrigins = %v, want 2 entries", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("AllowedOrigins[0] = %q", cfg.AllowedOrigins[0])
	}
}
