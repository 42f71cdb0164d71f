// Package model contains domain models passed between layers.
package model

import "strings"

// genderAll is the selector label that keeps every member regardless of gender.
const genderAll = "all"

// Member is one roster entry eligible for board selection.
type Member struct {
	Name          string // display name; duplicates are distinct entries
	Gender        string // free-form category label, e.g. "male", "female"
	PracticeCount int    // recorded practice sessions, never negative
}

// Roster is an ordered list of members. Order matters: it breaks ranking ties.
type Roster []Member

// Filter returns the members for which keep reports true, preserving order.
func (r Roster) Filter(keep func(Member) bool) Roster {
	out := make(Roster, 0, len(r))
	for _, m := range r {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// WithGender narrows the roster to one gender label.
// An empty label or "all" keeps everyone.
func (r Roster) WithGender(label string) Roster {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, genderAll) {
		return r.Filter(func(Member) bool { return true })
	}
	return r.Filter(func(m Member) bool { return m.Gender == label })
}

// Counts returns practice counts in roster order.
func (r Roster) Counts() []float64 {
	counts := make([]float64, len(r))
	for i, m := range r {
		counts[i] = float64(m.PracticeCount)
	}
	return counts
}

// Statistics summarises practice counts over a roster subset.
type Statistics struct {
	Mean              float64
	StandardDeviation float64
	SuggestedSigma    float64
	Count             int
}

// ScoredMember is one row of a lottery outcome.
type ScoredMember struct {
	Rank int
	Member
	Luck       float64
	FinalScore float64
}

// RankedResult is a lottery outcome ordered by FinalScore, best first.
type RankedResult []ScoredMember

// Names returns member names in rank order.
func (r RankedResult) Names() []string {
	names := make([]string, len(r))
	for i, s := range r {
		names[i] = s.Name
	}
	return names
}
