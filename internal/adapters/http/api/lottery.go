package api

import (
	"context"
	"net/http"

	service "github.com/gyouaiba-hash/sup-selection/internal/app"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
	"github.com/gyouaiba-hash/sup-selection/internal/domain/types"
)

// LotteryDependencies runs draws.
type LotteryDependencies interface {
	Draw(ctx context.Context, members model.Roster, sigma *float64) (service.Draw, error)
}

// LotteryHandler handles lottery requests.
type LotteryHandler struct {
	deps LotteryDependencies
}

// NewLotteryHandler creates a new lottery handler.
func NewLotteryHandler(deps LotteryDependencies) *LotteryHandler {
	return &LotteryHandler{deps: deps}
}

type lotteryRequest struct {
	rosterRequest
	// Sigma overrides the configured luck strength when set.
	Sigma *float64 `json:"sigma,omitempty"`
}

// HandlePostLottery handles POST /lottery requests. Only included members of
// the selected gender take part.
func (h *LotteryHandler) HandlePostLottery(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_lottery"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req lotteryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	d, err := h.deps.Draw(r.Context(), req.roster(false), req.Sigma)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, types.Draw{
		RunID:         d.RunID.String(),
		Sigma:         d.Sigma,
		ReversalRange: d.ReversalRange,
		DrawnAt:       d.DrawnAt,
		Results:       types.EntriesFrom(d.Result),
	})
}
