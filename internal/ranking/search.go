package ranking

import (
	"cmp"
	"slices"
	"strings"

	"github.com/neexbeast/quietseason/internal/catalog"
)

// Sort keys accepted by SortListings.
const (
	SortByCrowdLevel = "crowdLevel"
	SortByPrice      = "price"
	SortByName       = "name"
)

// Filters narrow the search listing. Zero values and nil ceilings match everything.
// Duration, TravelStyle and Accommodation are accepted but do not filter.
type Filters struct {
	Destination   string   `json:"destination"`
	MaxCrowdLevel *int     `json:"maxCrowdLevel,omitempty" validate:"omitempty,min=0,max=100"`
	MaxBudget     *int     `json:"maxBudget,omitempty" validate:"omitempty,min=0"`
	TravelMonth   string   `json:"travelMonth"`
	Duration      string   `json:"duration,omitempty"`
	TravelStyle   []string `json:"travelStyle,omitempty"`
	Activities    []string `json:"activities,omitempty"`
	Accommodation string   `json:"accommodation,omitempty"`
	SortBy        string   `json:"sortBy,omitempty" validate:"omitempty,oneof=crowdLevel price name"`
}

// SearchResult is one destination card on the search page.
type SearchResult struct {
	Destination       string   `json:"destination"`
	Country           string   `json:"country"`
	Region            string   `json:"region"`
	AverageCrowdLevel int      `json:"averageCrowdLevel"`
	BestMonths        []string `json:"bestMonths"`
	catalog.Listing
}

// FilterByQuery keeps the profiles that satisfy every set filter: destination
// or country contains Destination, average crowd and cost within the
// ceilings, TravelMonth is one of the best months, and at least one requested
// activity is offered. Text comparisons ignore case.
func FilterByQuery(profiles []catalog.Profile, f Filters) []catalog.Profile {
	out := make([]catalog.Profile, 0, len(profiles))
	for _, p := range profiles {
		if matchesFilters(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilters(p catalog.Profile, f Filters) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Destination)); q != "" {
		if !strings.Contains(strings.ToLower(p.Destination), q) && !strings.Contains(strings.ToLower(p.Country), q) {
			return false
		}
	}
	if f.MaxCrowdLevel != nil && p.AverageCrowdLevel > *f.MaxCrowdLevel {
		return false
	}
	if f.MaxBudget != nil && p.Listing.AverageCost > *f.MaxBudget {
		return false
	}
	if strings.TrimSpace(f.TravelMonth) != "" {
		m, ok := catalog.ParseMonth(f.TravelMonth)
		if !ok || !slices.Contains(p.BestMonths, m) {
			return false
		}
	}
	if len(f.Activities) > 0 && !slices.ContainsFunc(f.Activities, func(a string) bool {
		return slices.ContainsFunc(p.Listing.Activities, func(offered string) bool {
			return strings.EqualFold(offered, strings.TrimSpace(a))
		})
	}) {
		return false
	}
	return true
}

// SortListings returns a copy of profiles ordered by crowdLevel, price or
// name. The sort is stable; an unknown key keeps the input order.
func SortListings(profiles []catalog.Profile, by string) []catalog.Profile {
	sorted := slices.Clone(profiles)

	var less func(a, b catalog.Profile) int
	switch by {
	case SortByCrowdLevel:
		less = func(a, b catalog.Profile) int { return cmp.Compare(a.AverageCrowdLevel, b.AverageCrowdLevel) }
	case SortByPrice:
		less = func(a, b catalog.Profile) int { return cmp.Compare(a.Listing.AverageCost, b.Listing.AverageCost) }
	case SortByName:
		less = func(a, b catalog.Profile) int { return strings.Compare(a.Destination, b.Destination) }
	default:
		return sorted
	}

	slices.SortStableFunc(sorted, less)
	return sorted
}

// Search filters and sorts profiles and shapes them as search results.
func Search(profiles []catalog.Profile, f Filters) []SearchResult {
	matched := SortListings(FilterByQuery(profiles, f), f.SortBy)

	out := make([]SearchResult, 0, len(matched))
	for _, p := range matched {
		out = append(out, SearchResult{
			Destination:       p.Destination,
			Country:           p.Country,
			Region:            p.Region,
			AverageCrowdLevel: p.AverageCrowdLevel,
			BestMonths:        p.BestMonthNames(),
			Listing:           p.Listing,
		})
	}
	return out
}
