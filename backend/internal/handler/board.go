package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/boardlog/shared/api"
)

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	serial := chi.URLParam(r, "serial")

	board, err := h.board.Get(r.Context(), serial)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, api.BoardResponse{BoardWithRuns: *board})
}
