package app

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-stats-pipeline/internal/logging"
	"github.com/preston-bernstein/nhl-stats-pipeline/internal/runner"
)

type opsHandler struct {
	logger   *slog.Logger
	statusFn func() runner.Status
}

// newOpsMux serves Prometheus metrics next to liveness and readiness probes.
// statusFn is nil outside daemon mode, in which case the process is always ready.
func newOpsMux(metricsHandler http.Handler, statusFn func() runner.Status, logger *slog.Logger) http.Handler {
	h := opsHandler{logger: logger, statusFn: statusFn}
	mux := http.NewServeMux()
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	mux.HandleFunc("/health", h.health)
	mux.HandleFunc("/ready", h.ready)
	return mux
}

func (h opsHandler) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// ready fails once the run loop has failed repeatedly or never succeeded.
func (h opsHandler) ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsHealthy() {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ready", "cycles": status.Cycles}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, http.StatusServiceUnavailable, msg, h.logger)
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, map[string]string{"error": message}, logger)
}
