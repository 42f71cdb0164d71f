// Package types contains common types used across the application
package types

import (
	"time"

	"github.com/gyouaiba-hash/sup-selection/internal/domain/model"
)

// Entry represents one ranked lottery row
type Entry struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Gender        string  `json:"gender"`
	PracticeCount int     `json:"practice_count"`
	Luck          float64 `json:"luck"`
	FinalScore    float64 `json:"final_score"`
}

// Statistics is the read shape of roster statistics
type Statistics struct {
	Mean              float64 `json:"mean"`
	StandardDeviation float64 `json:"standard_deviation"`
	SuggestedSigma    float64 `json:"suggested_sigma"`
	Count             int     `json:"count"`
}

// Draw is the read shape of one lottery run
type Draw struct {
	RunID         string    `json:"run_id"`
	Sigma         float64   `json:"sigma"`
	ReversalRange float64   `json:"reversal_range"`
	DrawnAt       time.Time `json:"drawn_at"`
	Results       []Entry   `json:"results"`
}

// EntriesFrom converts a ranked result into wire entries.
func EntriesFrom(result model.RankedResult) []Entry {
	entries := make([]Entry, len(result))
	for i, s := range result {
		entries[i] = Entry{
			Rank:          s.Rank,
			Name:          s.Name,
			Gender:        s.Gender,
			PracticeCount: s.PracticeCount,
			Luck:          s.Luck,
			FinalScore:    s.FinalScore,
		}
	}
	return entries
}

// StatisticsFrom converts domain statistics into the wire shape.
func StatisticsFrom(s model.Statistics) Statistics {
	return Statistics{
		Mean:              s.Mean,
		StandardDeviation: s.StandardDeviation,
		SuggestedSigma:    s.SuggestedSigma,
		Count:             s.Count,
	}
}
