package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/forgo/jobly/internal/model"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of a healthy GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler reports service liveness
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler creates a health handler that pings db
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "health check failed", slog.String("error", err.Error()))
		WriteError(w, model.NewServiceUnavailableError("database unreachable"))
		return
	}

	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
