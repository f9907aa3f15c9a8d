package venue

import (
	"math"
	"slices"
	"strings"
	"time"
)

const globalCategoryLimit = 10

// PeakCrowdTime labels an hour of the day: 6-11 Morning, 12-17 Afternoon,
// 18-21 Evening, otherwise Night.
func PeakCrowdTime(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "Morning"
	case hour >= 12 && hour < 18:
		return "Afternoon"
	case hour >= 18 && hour < 22:
		return "Evening"
	default:
		return "Night"
	}
}

// Analyze aggregates snapshots as of now.
func Analyze(snapshots []CitySnapshot, now time.Time) Analytics {
	total, crowdSum := 0, 0
	for _, s := range snapshots {
		total += s.TotalVenues
		crowdSum += s.CrowdLevel
	}

	return Analytics{
		Timestamp:      now.UTC(),
		TotalVenues:    total,
		AvgCrowdLevel:  int(math.Round(safeDiv(float64(crowdSum), len(snapshots)))),
		CitiesAnalyzed: len(snapshots),
		PeakCrowdTime:  PeakCrowdTime(now.Hour()),
	}
}

// BuildReport extends Analyze with the crowd distribution, best and worst
// city, the ten most common top categories, and one row per city ordered by
// crowd level.
func BuildReport(snapshots []CitySnapshot, now time.Time) Report {
	r := Report{
		Analytics:     Analyze(snapshots, now),
		TopCategories: []CategoryCount{},
		Cities:        make([]CitySummary, 0, len(snapshots)),
	}

	ratingSum := 0.0
	var names []string
	for _, s := range snapshots {
		switch s.CrowdCategory {
		case CrowdLow:
			r.Distribution.Low++
		case CrowdModerate:
			r.Distribution.Moderate++
		case CrowdHigh:
			r.Distribution.High++
		}
		ratingSum += s.AvgRating
		names = append(names, s.TopCategories...)
	}

	sorted := slices.Clone(snapshots)
	slices.SortStableFunc(sorted, func(a, b CitySnapshot) int { return a.CrowdLevel - b.CrowdLevel })

	if len(sorted) > 0 {
		r.Insights.BestCity = highlight(sorted[0])
		r.Insights.WorstCity = highlight(sorted[len(sorted)-1])
	}
	r.Insights.TotalVenuesAnalyzed = r.TotalVenues
	r.Insights.AvgRating = round2(safeDiv(ratingSum, len(snapshots)))

	counts := countInOrder(names)
	r.TopCategories = append(r.TopCategories, counts[:min(globalCategoryLimit, len(counts))]...)

	for _, s := range sorted {
		r.Cities = append(r.Cities, CitySummary{
			Name:       displayName(s),
			CrowdLevel: s.CrowdLevel,
			Category:   s.CrowdCategory,
			Venues:     s.TotalVenues,
			Rating:     s.AvgRating,
		})
	}

	return r
}

// FilterSnapshots keeps the snapshots whose city contains any of names,
// ignoring case. An empty names list keeps everything.
func FilterSnapshots(snapshots []CitySnapshot, names []string) []CitySnapshot {
	if len(names) == 0 {
		return snapshots
	}

	out := make([]CitySnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		city := strings.ToLower(s.City)
		if slices.ContainsFunc(names, func(n string) bool {
			return strings.Contains(city, strings.ToLower(n))
		}) {
			out = append(out, s)
		}
	}
	return out
}

func highlight(s CitySnapshot) *CityHighlight {
	return &CityHighlight{Name: displayName(s), CrowdLevel: s.CrowdLevel, Venues: s.TotalVenues}
}

func displayName(s CitySnapshot) string {
	return s.City + ", " + s.Country
}
