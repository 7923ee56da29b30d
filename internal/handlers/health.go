package handlers

import (
	"net/http"
	"time"
)

// HealthHandlers exposes the liveness probe.
type HealthHandlers struct {
	startedAt time.Time
}

// NewHealthHandlers constructs the health handlers.
func NewHealthHandlers() *HealthHandlers {
	return &HealthHandlers{startedAt: time.Now().UTC()}
}

// Healthz reports process liveness and uptime.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Round(time.Second).String(),
	})
}
