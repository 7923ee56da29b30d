package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecustomers/storefront/internal/domain"
	"github.com/ecustomers/storefront/internal/platform/httpx"
	"github.com/ecustomers/storefront/internal/services"
)

// ThemeHandlers persists the display theme preference.
type ThemeHandlers struct {
	prefs services.PreferencesService
}

// NewThemeHandlers constructs the theme handlers.
func NewThemeHandlers(prefs services.PreferencesService) *ThemeHandlers {
	return &ThemeHandlers{prefs: prefs}
}

// Routes registers the theme endpoints.
func (h *ThemeHandlers) Routes(r chi.Router) {
	r.Get("/", h.Get)
	r.Put("/", h.Set)
	r.Post("/toggle", h.Toggle)
}

type themeRequest struct {
	Theme string `json:"theme"`
}

func themePayload(theme domain.Theme) map[string]any {
	return map[string]any{"theme": theme}
}

// Get returns the active theme, light by default.
func (h *ThemeHandlers) Get(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, themePayload(h.prefs.Theme(r.Context())))
}

// Set stores an explicit theme choice. Unknown values fall back to light.
func (h *ThemeHandlers) Set(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req themeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "request body must be valid JSON", http.StatusBadRequest))
		return
	}

	theme := domain.ParseTheme(req.Theme)
	if err := h.prefs.SetTheme(ctx, theme); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("theme_unavailable", "theme storage is unavailable", http.StatusServiceUnavailable))
		return
	}
	writeJSONResponse(w, http.StatusOK, themePayload(theme))
}

// Toggle flips between light and dark.
func (h *ThemeHandlers) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	theme, err := h.prefs.ToggleTheme(ctx)
	if err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("theme_unavailable", "theme storage is unavailable", http.StatusServiceUnavailable))
		return
	}
	writeJSONResponse(w, http.StatusOK, themePayload(theme))
}
