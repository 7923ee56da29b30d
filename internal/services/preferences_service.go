package services

import (
	"context"
	"errors"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/platform/kvstore"
)

// ThemeKey is the store key holding the persisted theme preference.
const ThemeKey = "ecustomers-theme"

// ErrPreferencesUnavailable indicates the preference store cannot be
// reached.
var ErrPreferencesUnavailable = errors.New("preferences service: unavailable")

// PreferencesServiceDeps wires the store behind display preferences.
type PreferencesServiceDeps struct {
	Store  kvstore.Store
	Logger func(context.Context, string, map[string]any)
}

type preferencesService struct {
	store  kvstore.Store
	logger func(context.Context, string, map[string]any)
}

// NewPreferencesService constructs a PreferencesService over the store.
func NewPreferencesService(deps PreferencesServiceDeps) (PreferencesService, error) {
	if deps.Store == nil {
		return nil, errors.New("preferences service: store is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &preferencesService{store: deps.Store, logger: logger}, nil
}

// Theme returns the persisted theme. Absent, unreadable or foreign values
// all fall back to light.
func (s *preferencesService) Theme(ctx context.Context) domain.Theme {
	value, ok, err := s.store.Get(ctx, ThemeKey)
	if err != nil {
		s.logger(ctx, "preferences.load_failed", map[string]any{"error": err.Error()})
		return domain.ThemeLight
	}
	if !ok {
		return domain.ThemeLight
	}
	return domain.ParseTheme(value)
}

// SetTheme persists the theme preference.
func (s *preferencesService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if theme != domain.ThemeDark {
		theme = domain.ThemeLight
	}
	if err := s.store.Set(ctx, ThemeKey, string(theme)); err != nil {
		s.logger(ctx, "preferences.persist_failed", map[string]any{"error": err.Error()})
		return ErrPreferencesUnavailable
	}
	return nil
}

// ToggleTheme flips and persists the theme, returning the new value.
func (s *preferencesService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	next := s.Theme(ctx).Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
