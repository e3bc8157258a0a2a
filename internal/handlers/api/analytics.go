package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pinnacle-pathways/matchtrack/internal/metrics"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analytics"
)

type startVisitRequest struct {
	Page string `json:"page"`
}

func (h *Handler) startVisit(w http.ResponseWriter, r *http.Request) {
	var req startVisitRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	output, err := h.analytics.StartVisit(r.Context(), &analytics.StartVisitInput{
		Page:      req.Page,
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	metrics.RecordPageView()
	h.respondJSON(w, http.StatusCreated, output.Visit)
}

func (h *Handler) endVisit(w http.ResponseWriter, r *http.Request) {
	output, err := h.analytics.EndVisit(r.Context(), &analytics.EndVisitInput{
		VisitID: chi.URLParam(r, "visitID"),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, output.Visit)
}

type dashboardResponse struct {
	PageCounts map[string]int64 `json:"pageCounts"`
	DayCounts  map[string]int64 `json:"dayCounts"`
	TotalViews int64            `json:"totalViews"`
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	output, err := h.analytics.GetDashboard(r.Context(), &analytics.GetDashboardInput{})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dashboardResponse{
		PageCounts: output.PageCounts,
		DayCounts:  output.DayCounts,
		TotalViews: output.TotalViews,
	})
}
