package api

import (
	"context"
	"net/http"

	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/types"
)

// StatisticsDependencies computes roster statistics.
type StatisticsDependencies interface {
	Statistics(ctx context.Context, members model.Roster) model.Statistics
}

// StatisticsHandler handles statistics requests.
type StatisticsHandler struct {
	deps StatisticsDependencies
}

// NewStatisticsHandler creates a new statistics handler.
func NewStatisticsHandler(deps StatisticsDependencies) *StatisticsHandler {
	return &StatisticsHandler{deps: deps}
}

type statisticsRequest struct {
	rosterRequest
	// IncludeExcluded counts members that sit out the draw as well.
	IncludeExcluded bool `json:"include_excluded"`
}

// HandlePostStatistics handles POST /statistics requests.
func (h *StatisticsHandler) HandlePostStatistics(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_statistics"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req statisticsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	st := h.deps.Statistics(r.Context(), req.roster(req.IncludeExcluded))
	writeJSON(w, http.StatusOK, types.StatisticsFrom(st))
}
