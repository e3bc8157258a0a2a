package api

import (
	"net/http"
	"strconv"

	actionLogRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/actionlog"
)

func (h *Handler) listActions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	output, err := h.actions.ListActions(r.Context(), &actionLogRepo.ListActionsInput{
		Limit: limit,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output.Entries)
}
