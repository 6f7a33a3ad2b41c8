package config

import (
	"reflect"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/ops")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected development environment, got %q", cfg.Environment)
	}
	if cfg.HTTP.Port != 8080 || cfg.HTTP.Host != "0.0.0.0" {
		t.Errorf("unexpected http config %+v", cfg.HTTP)
	}
	if cfg.DB.ConnMaxLifetime != "30m" || cfg.DB.AutoMigrate {
		t.Errorf("unexpected db config %+v", cfg.DB)
	}
	if !reflect.DeepEqual(cfg.HTTP.CORSAllowedOrigins, []string{"*"}) {
		t.Errorf("unexpected origins %v", cfg.HTTP.CORSAllowedOrigins)
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/ops")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ops.firm.mx, ,https://admin.firm.mx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Environment != "production" || cfg.HTTP.Port != 9000 || !cfg.DB.AutoMigrate {
		t.Errorf("unexpected config %+v", cfg)
	}
	want := []string{"https://ops.firm.mx", "https://admin.firm.mx"}
	if !reflect.DeepEqual(cfg.HTTP.CORSAllowedOrigins, want) {
		t.Errorf("expected origins %v, got %v", want, cfg.HTTP.CORSAllowedOrigins)
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	if _, err := Load(); err == nil {
		t.Error("expected error without DB_DSN")
	}

	t.Setenv("DB_DSN", "postgres://localhost/ops")
	t.Setenv("JWT_ACCESS_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("expected error without JWT_ACCESS_SECRET")
	}
}
