package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/handler/http/response"
)

// Pinger is a dependency that has to be reachable before sessions can be served.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Ready(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	sessionStore Pinger
	timeout      time.Duration
}

func NewHealthHandler(sessionStore Pinger) HealthHandler {
	return &healthHandlerImpl{sessionStore: sessionStore, timeout: 2 * time.Second}
}

func (h *healthHandlerImpl) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.sessionStore.Ping(ctx); err != nil {
		slog.Error("Readiness check failed", "check", "session_store", "error", err)
		response.Error(w, http.StatusServiceUnavailable, "NOT_READY", "Session store is unavailable", nil)
		return
	}
	response.Success(w, map[string]string{"session_store": "ok"})
}
