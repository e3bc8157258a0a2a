package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	sportRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/sport"
)

func (h *Handler) listSports(w http.ResponseWriter, r *http.Request) {
	output, err := h.sports.ListSports(r.Context(), &sportRepo.ListSportsInput{})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output.Sports)
}

func (h *Handler) getSport(w http.ResponseWriter, r *http.Request) {
	sp, err := h.sports.GetSport(r.Context(), &sportRepo.GetSportInput{
		SportID: chi.URLParam(r, "sportID"),
	})
	if err != nil {
		if errors.Is(err, sportRepo.ErrSportNotFound) {
			h.respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, sp)
}
