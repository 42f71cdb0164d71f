// Package scoring ranks a roster by practice count plus Gaussian luck.
package scoring

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
)

// ReversalFactor turns sigma into the practice gap within which two members
// can plausibly swap places.
const ReversalFactor = 2.0

// Gaussian supplies standard normal samples (mean 0, deviation 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Gaussian interface {
	NormFloat64() float64
}

// Run scores every member as PracticeCount + N(0, sigma) and returns them
// ordered by final score, best first. Ties keep roster order and ranks are
// positional, so no two rows share a rank.
//
// An empty roster yields an empty result. A negative or non-finite sigma is
// rejected with ErrInvalidSigma. With sigma == 0 no samples are drawn and the
// ranking is by practice count alone.
func Run(roster model.Roster, sigma float64, rng Gaussian) (model.RankedResult, error) {
	if err := ValidateSigma(sigma); err != nil {
		return nil, err
	}

	result := make(model.RankedResult, len(roster))
	for i, m := range roster {
		var luck float64
		if sigma > 0 {
			luck = rng.NormFloat64() * sigma
		}
		result[i] = model.ScoredMember{
			Member:     m,
			Luck:       luck,
			FinalScore: float64(m.PracticeCount) + luck,
		}
	}

	slices.SortStableFunc(result, func(a, b model.ScoredMember) int {
		return cmp.Compare(b.FinalScore, a.FinalScore)
	})
	for i := range result {
		result[i].Rank = i + 1
	}

	return result, nil
}

// ValidateSigma reports whether sigma is usable as a Gaussian scale.
func ValidateSigma(sigma float64) error {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		return fmt.Errorf("%w: %v (must be a finite value >= 0)", ErrInvalidSigma, sigma)
	}
	return nil
}

// ReversalRange returns sigma*2, a rule-of-thumb practice gap inside which
// rank reversal is plausible.
func ReversalRange(sigma float64) float64 {
	return sigma * ReversalFactor
}

// Lottery runs draws against its own random source and is safe for
// concurrent use.
type Lottery struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLottery creates a lottery seeded from the clock unless an option
// supplies a source.
func NewLottery(opts ...Option) *Lottery {
	l := &Lottery{}

	for _, opt := range opts {
		opt(l)
	}

	if l.rng == nil {
		l.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())) //nolint:gosec // luck draw, not security
	}

	return l
}

// Run draws one lottery over roster, honoring ctx for cancellation.
func (l *Lottery) Run(ctx context.Context, roster model.Roster, sigma float64) (model.RankedResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return Run(roster, sigma, l.rng)
}
