package handler

import (
	"net/http"
	"strconv"

	"github.com/itchan-dev/boardlog/backend/internal/service"
	"github.com/itchan-dev/boardlog/shared/api"
	"github.com/itchan-dev/boardlog/shared/domain"
	"github.com/itchan-dev/boardlog/shared/errors"
	"github.com/itchan-dev/boardlog/shared/utils"
)

func (h *Handler) ListTestRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange && n > 0 {
			n, err = service.MaxListedRuns, nil
		}
		if err != nil || n < 1 {
			writeError(w, r, errors.BadRequest("invalid limit: must be a positive integer"))
			return
		}
		limit = n
	}

	runs, err := h.testRun.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, api.TestRunListResponse(runs))
}

func (h *Handler) CreateTestRun(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var body api.CreateTestRunRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		writeError(w, r, err)
		return
	}

	run := domain.TestRunCreationData{
		Tester:          body.Run.Tester,
		FirmwareVersion: body.Run.FirmwareVersion,
		FixtureVersion:  body.Run.FixtureVersion,
		Result:          body.Run.Result,
		Comments:        body.Run.Comments,
		TestedAt:        body.Run.TestedAt,
	}
	created, err := h.testRun.Create(r.Context(), body.Board.ToDomain(), run)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.CreateTestRunResponse{CreatedTestRun: created})
}
