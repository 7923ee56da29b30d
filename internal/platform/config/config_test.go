package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Store.Backend != "file" {
		t.Fatalf("expected default file backend, got %q", cfg.Store.Backend)
	}
	if cfg.Checkout.ShippingFee != 15000 {
		t.Fatalf("expected default shipping fee 15000, got %d", cfg.Checkout.ShippingFee)
	}
	if cfg.Checkout.WhatsAppNumber == "" {
		t.Fatalf("expected default whatsapp number")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("SHIPPING_FEE", "20000")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("expected memory backend, got %q", cfg.Store.Backend)
	}
	if cfg.Checkout.ShippingFee != 20000 {
		t.Fatalf("expected shipping fee 20000, got %d", cfg.Checkout.ShippingFee)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Fatalf("expected read timeout 5s, got %v", cfg.Server.ReadTimeout)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	contents := "# storefront settings\nexport PORT=7001\nSTORE_BACKEND=\"memory\"\nWHATSAPP_NUMBER='628555000111'\n"
	if err := os.WriteFile(envFile, []byte(contents), 0o600); err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	t.Setenv("ENV_FILE", envFile)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "7001" {
		t.Fatalf("expected port 7001 from env file, got %q", cfg.Server.Port)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("expected quotes stripped, got %q", cfg.Store.Backend)
	}
	if cfg.Checkout.WhatsAppNumber != "628555000111" {
		t.Fatalf("expected single quotes stripped, got %q", cfg.Checkout.WhatsAppNumber)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("STORE_BACKEND", "cassandra")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected validation error for unknown backend")
	}
	validation, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	fields := validation.Fields()
	if len(fields) != 1 || fields[0] != "Store.Backend" {
		t.Fatalf("unexpected fields %v", fields)
	}
}
