package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pinnacle-pathways/matchtrack/internal/services/analysis"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analytics"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// respondError maps service errors onto HTTP status codes
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, analysis.ErrMatchNotFound),
		errors.Is(err, analysis.ErrSportNotFound),
		errors.Is(err, analysis.ErrSessionNotFound),
		errors.Is(err, analysis.ErrSliceNotFound),
		errors.Is(err, analytics.ErrVisitNotFound):
		status = http.StatusNotFound
	case errors.Is(err, analysis.ErrEmptyMatchName),
		errors.Is(err, analysis.ErrEmptyPlayerID),
		errors.Is(err, analysis.ErrEmptyEventType),
		errors.Is(err, analytics.ErrEmptyPage):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}

	h.respondJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody parses a JSON request body into dst
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
