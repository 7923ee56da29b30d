package services

import (
	"context"
	"testing"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/platform/kvstore"
)

func TestPreferencesDefaultToLight(t *testing.T) {
	service, err := NewPreferencesService(PreferencesServiceDeps{Store: kvstore.NewMemoryStore()})
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}
	if theme := service.Theme(context.Background()); theme != domain.ThemeLight {
		t.Fatalf("expected light default, got %q", theme)
	}
}

func TestPreferencesPersistTheme(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	service, _ := NewPreferencesService(PreferencesServiceDeps{Store: store})

	if err := service.SetTheme(ctx, domain.ThemeDark); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh service over the same store sees the persisted preference.
	reloaded, _ := NewPreferencesService(PreferencesServiceDeps{Store: store})
	if theme := reloaded.Theme(ctx); theme != domain.ThemeDark {
		t.Fatalf("expected persisted dark theme, got %q", theme)
	}
}

func TestPreferencesToggle(t *testing.T) {
	ctx := context.Background()
	service, _ := NewPreferencesService(PreferencesServiceDeps{Store: kvstore.NewMemoryStore()})

	theme, err := service.ToggleTheme(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme != domain.ThemeDark {
		t.Fatalf("expected dark after first toggle, got %q", theme)
	}

	theme, _ = service.ToggleTheme(ctx)
	if theme != domain.ThemeLight {
		t.Fatalf("expected light after second toggle, got %q", theme)
	}
}

func TestPreferencesIgnoreForeignStoredValue(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	if err := store.Set(ctx, ThemeKey, "solarized"); err != nil {
		t.Fatalf("unexpected setup error: %v", err)
	}
	service, _ := NewPreferencesService(PreferencesServiceDeps{Store: store})
	if theme := service.Theme(ctx); theme != domain.ThemeLight {
		t.Fatalf("expected light fallback for foreign value, got %q", theme)
	}
}
