// Package statistics derives practice-count statistics and a suggested luck
// strength from any subset of a roster.
package statistics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
)

const (
	// DefaultSigma is suggested when there is nobody to measure.
	DefaultSigma = 2.0
	// MinSuggestedSigma keeps the luck term from vanishing on flat rosters.
	MinSuggestedSigma = 0.5
	// SuggestedSigmaRatio scales the standard deviation into a sigma.
	SuggestedSigmaRatio = 0.5
)

// Compute returns mean, sample standard deviation and suggested sigma of the
// practice counts in members. It never fails: an empty input yields
// {0, 0, DefaultSigma} and fewer than two members yield a zero deviation.
func Compute(members model.Roster) model.Statistics {
	if len(members) == 0 {
		return model.Statistics{SuggestedSigma: DefaultSigma}
	}

	counts := members.Counts()
	mean, sd := stat.MeanStdDev(counts, nil)
	if len(counts) < 2 || math.IsNaN(sd) {
		sd = 0
	}

	return model.Statistics{
		Mean:              mean,
		StandardDeviation: sd,
		SuggestedSigma:    SuggestedSigma(sd),
		Count:             len(counts),
	}
}

// SuggestedSigma maps a standard deviation to max(0.5, sd*0.5).
func SuggestedSigma(sd float64) float64 {
	return math.Max(MinSuggestedSigma, sd*SuggestedSigmaRatio)
}
