// Package ranking scores catalog destinations against traveller preferences.
package ranking

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/neexbeast/quietseason/internal/catalog"
)

const (
	baseScore          = 100
	overCrowdPenalty   = 2
	lowCrowdBonus      = 20
	mediumCrowdBonus   = 10
	monthMatchBonus    = 15
	lowCrowdCeiling    = 25
	mediumCrowdCeiling = 40
	maxResults         = 10
)

// MonthRef is a requested month given either as a name or as a number.
type MonthRef string

// UnmarshalJSON accepts a JSON string or number.
func (m *MonthRef) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*m = MonthRef(strconv.Itoa(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("month must be a name or a number: %w", err)
	}
	*m = MonthRef(s)
	return nil
}

// term is the text matched against best-month names. Numbers 1-12 become
// the month's full name.
func (m MonthRef) term() string {
	s := strings.TrimSpace(string(m))
	if n, err := strconv.Atoi(s); err == nil {
		if name := catalog.MonthName(n); name != "" {
			return strings.ToLower(name)
		}
	}
	return strings.ToLower(s)
}

// Preferences shape a recommendation request. A nil MaxCrowdLevel means no ceiling.
type Preferences struct {
	MaxCrowdLevel *int       `json:"maxCrowdLevel,omitempty" validate:"omitempty,min=0,max=100"`
	Months        []MonthRef `json:"months,omitempty" validate:"omitempty,max=12,dive,required"`
	Budget        *int       `json:"budget,omitempty" validate:"omitempty,min=0"`
	Activities    []string   `json:"activities,omitempty" validate:"omitempty,dive,required"`
}

// Recommendation is one ranked destination.
type Recommendation struct {
	Destination       string   `json:"destination"`
	Country           string   `json:"country"`
	AverageCrowdLevel int      `json:"averageCrowdLevel"`
	BestMonths        []string `json:"bestMonths"`
	Recommendation    string   `json:"recommendation"`
	Score             int      `json:"score"`
}

// Score rates a destination for prefs. It starts at 100, loses 2 points per
// percent the average crowd exceeds MaxCrowdLevel, gains 20 for an average
// of at most 25 (or 10 for at most 40) and 15 when a requested month matches
// a best month. The result is floored at 0 and has no upper bound.
func Score(p catalog.Profile, prefs Preferences) int {
	score := baseScore

	if prefs.MaxCrowdLevel != nil {
		score -= overCrowdPenalty * max(0, p.AverageCrowdLevel-*prefs.MaxCrowdLevel)
	}

	switch {
	case p.AverageCrowdLevel <= lowCrowdCeiling:
		score += lowCrowdBonus
	case p.AverageCrowdLevel <= mediumCrowdCeiling:
		score += mediumCrowdBonus
	}

	if len(prefs.Months) > 0 && matchesMonth(p, prefs.Months) {
		score += monthMatchBonus
	}

	return max(0, score)
}

// matchesMonth reports whether any requested month is a case-insensitive
// substring of one of the profile's best-month names.
func matchesMonth(p catalog.Profile, months []MonthRef) bool {
	best := p.BestMonthNames()
	for _, m := range months {
		t := m.term()
		if t == "" {
			continue
		}
		for _, name := range best {
			if strings.Contains(strings.ToLower(name), t) {
				return true
			}
		}
	}
	return false
}

// Ranker recommends destinations from a catalog.
type Ranker struct {
	catalog *catalog.Catalog
}

// New constructs a Ranker reading from c.
func New(c *catalog.Catalog) *Ranker {
	return &Ranker{catalog: c}
}

// Recommend filters the catalog by prefs, scores the survivors and returns
// at most ten, highest score first. Equal scores keep catalog order.
func (r *Ranker) Recommend(prefs Preferences) []Recommendation {
	out := []Recommendation{}

	for _, p := range r.catalog.Profiles() {
		if prefs.MaxCrowdLevel != nil && p.AverageCrowdLevel > *prefs.MaxCrowdLevel {
			continue
		}
		if len(prefs.Months) > 0 && !matchesMonth(p, prefs.Months) {
			continue
		}

		bt, err := r.catalog.BestTimeToVisit(p.Destination)
		if err != nil {
			continue
		}

		out = append(out, Recommendation{
			Destination:       p.Destination,
			Country:           p.Country,
			AverageCrowdLevel: p.AverageCrowdLevel,
			BestMonths:        bt.BestMonths,
			Recommendation:    bt.Recommendation,
			Score:             Score(p, prefs),
		})
	}

	slices.SortStableFunc(out, func(a, b Recommendation) int { return b.Score - a.Score })
	return out[:min(maxResults, len(out))]
}
