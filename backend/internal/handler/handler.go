package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/boardlog/backend/internal/service"
	"github.com/itchan-dev/boardlog/shared/errors"
	"github.com/itchan-dev/boardlog/shared/logger"
	"github.com/itchan-dev/boardlog/shared/utils"
)

// maxBodyBytes bounds a create-run request body.
const maxBodyBytes = 1 << 20

// HealthChecker is satisfied by the storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// DBProber reports the database clock and name.
type DBProber interface {
	Probe(ctx context.Context) (time.Time, string, error)
}

type Handler struct {
	board   service.BoardService
	testRun service.TestRunService
	health  HealthChecker
	prober  DBProber
}

func New(board service.BoardService, testRun service.TestRunService, health HealthChecker, prober DBProber) *Handler {
	return &Handler{board: board, testRun: testRun, health: health, prober: prober}
}

func writeJSON(w http.ResponseWriter, v any) {
	utils.WriteJSON(w, http.StatusOK, v)
}

// writeError logs server-side failures before replying.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if status := errors.StatusCode(err); status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", "path", r.URL.Path, "error", err)
	}
	utils.WriteErrorAndStatusCode(w, err)
}
