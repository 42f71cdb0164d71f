// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	service "github.com/gyouaiba-hash/sup-selection/internal/app"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/scoring"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StatisticsDependencies
	LotteryDependencies
	ReversalDependencies
}

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	statisticsHandler *StatisticsHandler
	lotteryHandler    *LotteryHandler
	reversalHandler   *ReversalHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		statisticsHandler: NewStatisticsHandler(deps),
		lotteryHandler:    NewLotteryHandler(deps),
		reversalHandler:   NewReversalHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/statistics", MetricsMiddleware(s.statisticsHandler.HandlePostStatistics, "statistics"))
	mux.HandleFunc("/lottery", MetricsMiddleware(s.lotteryHandler.HandlePostLottery, "lottery"))
	mux.HandleFunc("/reversal-range", MetricsMiddleware(s.reversalHandler.HandleGetReversalRange, "reversal_range"))
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats())
}

// memberRequest is the wire shape of one roster row.
type memberRequest struct {
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	PracticeCount int    `json:"practice_count"`
	// Included marks the member as taking part; absent means true.
	Included *bool `json:"included,omitempty"`
}

func (m memberRequest) included() bool {
	return m.Included == nil || *m.Included
}

// rosterRequest carries the members and the selection applied to them.
type rosterRequest struct {
	Members []memberRequest `json:"members"`
	Gender  string          `json:"gender"`
}

func (r rosterRequest) validate() error {
	for i, m := range r.Members {
		switch {
		case strings.TrimSpace(m.Name) == "":
			return fmt.Errorf("members[%d]: missing name", i)
		case m.PracticeCount < 0:
			return fmt.Errorf("members[%d]: practice_count must be >= 0", i)
		}
	}
	return nil
}

// roster selects members of the requested gender, keeping excluded ones
// only when withExcluded is set.
func (r rosterRequest) roster(withExcluded bool) model.Roster {
	out := make(model.Roster, 0, len(r.Members))
	for _, m := range r.Members {
		if !withExcluded && !m.included() {
			continue
		}
		out = append(out, model.Member{
			Name:          strings.TrimSpace(m.Name),
			Gender:        strings.TrimSpace(m.Gender),
			PracticeCount: m.PracticeCount,
		})
	}
	return out.WithGender(r.Gender)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps service and engine sentinels onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, scoring.ErrInvalidSigma), errors.Is(err, service.ErrSigmaTooLarge):
		writeError(w, http.StatusBadRequest, "invalid_parameter", WrapKind(op, ErrInvalidParameter, err))
	case errors.Is(err, service.ErrEmptyRoster):
		writeError(w, http.StatusUnprocessableEntity, "empty_roster", Wrap(op, err))
	case errors.Is(err, service.ErrRosterTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "roster_too_large", Wrap(op, err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "cancelled", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
