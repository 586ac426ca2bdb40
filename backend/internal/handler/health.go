package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/boardlog/shared/api"
)

// Health is a liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// Ready returns 503 when the database cannot be pinged.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// DBTest returns the database server time and the active database name.
func (h *Handler) DBTest(w http.ResponseWriter, r *http.Request) {
	now, dbName, err := h.prober.Probe(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, api.DBProbeResponse{Ok: true, Now: now, Database: dbName})
}
