package api

import (
	"net/http"
	"strconv"
)

// ReversalDependencies derives the reversal range for a sigma.
type ReversalDependencies interface {
	ReversalRange(sigma float64) (float64, error)
	DefaultSigma() float64
}

// ReversalHandler handles reversal range requests.
type ReversalHandler struct {
	deps ReversalDependencies
}

// NewReversalHandler creates a new reversal range handler.
func NewReversalHandler(deps ReversalDependencies) *ReversalHandler {
	return &ReversalHandler{deps: deps}
}

type reversalResponse struct {
	Sigma         float64 `json:"sigma"`
	ReversalRange float64 `json:"reversal_range"`
}

// HandleGetReversalRange handles GET /reversal-range?sigma=S requests.
// Without sigma the configured default is used.
func (h *ReversalHandler) HandleGetReversalRange(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_reversal_range"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	sigma := h.deps.DefaultSigma()
	if raw := r.URL.Query().Get("sigma"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_parameter", WrapKind(op, ErrInvalidParameter, err))
			return
		}
		sigma = v
	}

	rr, err := h.deps.ReversalRange(sigma)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, reversalResponse{Sigma: sigma, ReversalRange: rr})
}
