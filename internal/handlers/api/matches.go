package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pinnacle-pathways/matchtrack/internal/metrics"
	"github.com/pinnacle-pathways/matchtrack/internal/models"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analysis"
	"github.com/pinnacle-pathways/matchtrack/internal/timecode"
)

type createMatchRequest struct {
	Name      string    `json:"name"`
	SportID   string    `json:"sport"`
	MatchDate time.Time `json:"matchDate,omitempty"`
	VideoURL  string    `json:"videoUrl,omitempty"`
}

func (h *Handler) createMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	output, err := h.analysis.CreateMatch(r.Context(), &analysis.CreateMatchInput{
		Name:      req.Name,
		SportID:   req.SportID,
		MatchDate: req.MatchDate,
		VideoURL:  req.VideoURL,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	metrics.RecordMutationPersisted("createMatch")
	h.respondJSON(w, http.StatusCreated, output.Match)
}

func (h *Handler) listMatches(w http.ResponseWriter, r *http.Request) {
	output, err := h.analysis.ListMatches(r.Context(), &analysis.ListMatchesInput{
		SportID: r.URL.Query().Get("sport"),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output.Matches)
}

func (h *Handler) getMatch(w http.ResponseWriter, r *http.Request) {
	output, err := h.analysis.GetMatch(r.Context(), &analysis.GetMatchInput{
		MatchID: chi.URLParam(r, "matchID"),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output.Match)
}

type addPlayerRequest struct {
	PlayerID string `json:"playerId"`
}

func (h *Handler) addPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	output, err := h.analysis.AddPlayer(r.Context(), &analysis.AddPlayerInput{
		MatchID:  chi.URLParam(r, "matchID"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	if output.Added {
		metrics.RecordMutationPersisted("addPlayer")
	}
	h.respondJSON(w, http.StatusOK, output.Match)
}

func (h *Handler) removePlayer(w http.ResponseWriter, r *http.Request) {
	output, err := h.analysis.RemovePlayer(r.Context(), &analysis.RemovePlayerInput{
		MatchID:  chi.URLParam(r, "matchID"),
		PlayerID: chi.URLParam(r, "playerID"),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	if output.Removed {
		metrics.RecordMutationPersisted("removePlayer")
	}
	h.respondJSON(w, http.StatusOK, output.Match)
}

type addSessionRequest struct {
	Name string `json:"name,omitempty"`
}

func (h *Handler) addSession(w http.ResponseWriter, r *http.Request) {
	var req addSessionRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	output, err := h.analysis.AddSession(r.Context(), &analysis.AddSessionInput{
		MatchID: chi.URLParam(r, "matchID"),
		Name:    req.Name,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	metrics.RecordMutationPersisted("addSession")
	h.respondJSON(w, http.StatusCreated, output.Session)
}

type createSliceRequest struct {
	PlaybackTime float64 `json:"playbackTime"`
}

func (h *Handler) createSlice(w http.ResponseWriter, r *http.Request) {
	var req createSliceRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	output, err := h.analysis.CreateSlice(r.Context(), &analysis.CreateSliceInput{
		MatchID:      chi.URLParam(r, "matchID"),
		SessionID:    chi.URLParam(r, "sessionID"),
		PlaybackTime: req.PlaybackTime,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	metrics.RecordMutationPersisted("createSlice")
	h.respondJSON(w, http.StatusCreated, output.Slice)
}

type togglePlayerRequest struct {
	PlayerID string `json:"playerId"`
}

func (h *Handler) toggleActivePlayer(w http.ResponseWriter, r *http.Request) {
	var req togglePlayerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	output, err := h.analysis.ToggleActivePlayer(r.Context(), &analysis.ToggleActivePlayerInput{
		MatchID:   chi.URLParam(r, "matchID"),
		SessionID: chi.URLParam(r, "sessionID"),
		SliceID:   chi.URLParam(r, "sliceID"),
		PlayerID:  req.PlayerID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	metrics.RecordMutationPersisted("toggleActivePlayer")
	h.respondJSON(w, http.StatusOK, output.Slice)
}

type addEventRequest struct {
	Type         string   `json:"type"`
	PlaybackTime float64  `json:"playbackTime"`
	Players      []string `json:"players,omitempty"`
}

// eventResponse decorates an event with its display position
type eventResponse struct {
	*models.Event
	Position string `json:"position"`
}

func (h *Handler) addEvent(w http.ResponseWriter, r *http.Request) {
	var req addEventRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	output, err := h.analysis.AddEvent(r.Context(), &analysis.AddEventInput{
		MatchID:      chi.URLParam(r, "matchID"),
		SessionID:    chi.URLParam(r, "sessionID"),
		Type:         req.Type,
		PlaybackTime: req.PlaybackTime,
		Players:      req.Players,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	metrics.RecordMutationPersisted("addEvent")
	h.respondJSON(w, http.StatusCreated, eventResponse{
		Event:    output.Event,
		Position: timecode.Format(output.Event.Timestamp),
	})
}
