package venue

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	snapshotVenueLimit = 50
	snapshotSampleSize = 10
	topCategoryLimit   = 5
)

// VenueSource is the interface satisfied by Fetcher.
type VenueSource interface {
	FetchVenues(ctx context.Context, city City, limit int) VenueSet
}

// Estimator computes crowd snapshots for the sample panel.
type Estimator struct {
	source  VenueSource
	cities  []City
	metrics Recorder
	log     *slog.Logger
}

// NewEstimator constructs an Estimator over the given panel of cities.
func NewEstimator(source VenueSource, cities []City, rec Recorder, log *slog.Logger) *Estimator {
	if rec == nil {
		rec = nopRecorder{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Estimator{source: source, cities: slices.Clone(cities), metrics: rec, log: log}
}

// Cities returns the panel in order.
func (e *Estimator) Cities() []City {
	return slices.Clone(e.cities)
}

// Snapshot computes the snapshot of a panel city looked up by name, ignoring case.
func (e *Estimator) Snapshot(ctx context.Context, name string) (CitySnapshot, error) {
	city, ok := findCity(e.cities, name)
	if !ok {
		return CitySnapshot{}, fmt.Errorf("city %q: %w", name, ErrUnknownCity)
	}
	return e.CitySnapshot(ctx, city)
}

// CitySnapshot fetches up to 50 venues for city and summarises them.
func (e *Estimator) CitySnapshot(ctx context.Context, city City) (CitySnapshot, error) {
	if err := ctx.Err(); err != nil {
		return CitySnapshot{}, fmt.Errorf("snapshot for %s: %w", city.Name, err)
	}

	start := time.Now()
	defer func() { e.metrics.SnapshotDuration(ctx, time.Since(start)) }()

	set := e.source.FetchVenues(ctx, city, snapshotVenueLimit)
	venues := set.Venues

	var popSum, ratingSum float64
	for _, v := range venues {
		if v.Popularity != nil {
			popSum += *v.Popularity
		}
		if v.Rating != nil {
			ratingSum += *v.Rating
		}
	}

	level := CrowdLevel(venues)

	return CitySnapshot{
		City:          city.Name,
		Country:       city.Country,
		TotalVenues:   len(venues),
		AvgPopularity: round2(safeDiv(popSum, len(venues))),
		AvgRating:     round2(safeDiv(ratingSum, len(venues))),
		CrowdLevel:    level,
		CrowdCategory: Categorize(level),
		TopCategories: topCategories(venues, topCategoryLimit),
		LastUpdated:   time.Now().UTC(),
		VenuesSample:  slices.Clone(venues[:min(snapshotSampleSize, len(venues))]),
		Simulated:     set.Simulated,
	}, nil
}

// Panel snapshots every panel city concurrently. A city that fails or panics
// is left out; the rest keep panel order.
func (e *Estimator) Panel(ctx context.Context) []CitySnapshot {
	slots := make([]*CitySnapshot, len(e.cities))

	g, gCtx := errgroup.WithContext(ctx)
	for i, city := range e.cities {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					e.log.Error("city snapshot panicked", "city", city.Name, "recover", r)
					e.metrics.PanelCityFailure(gCtx)
				}
			}()

			snap, err := e.CitySnapshot(gCtx, city)
			if err != nil {
				e.log.Warn("city snapshot failed", "city", city.Name, "err", err)
				e.metrics.PanelCityFailure(gCtx)
				return nil
			}
			slots[i] = &snap
			return nil
		})
	}
	_ = g.Wait()

	out := make([]CitySnapshot, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

// Analytics snapshots the panel and aggregates it at the current time.
func (e *Estimator) Analytics(ctx context.Context) Analytics {
	return Analyze(e.Panel(ctx), time.Now())
}

// Report snapshots the panel and builds the full report at the current time.
func (e *Estimator) Report(ctx context.Context) Report {
	return BuildReport(e.Panel(ctx), time.Now())
}

// topCategories counts category names across venues and returns the n most
// frequent. Ties keep first-seen order.
func topCategories(venues []Venue, n int) []string {
	var names []string
	for _, v := range venues {
		for _, c := range v.Categories {
			names = append(names, c.Name)
		}
	}
	counts := countInOrder(names)

	out := make([]string, 0, min(n, len(counts)))
	for _, c := range counts[:min(n, len(counts))] {
		out = append(out, c.Name)
	}
	return out
}

// countInOrder tallies names and sorts them by count descending, keeping
// first-seen order among equal counts.
func countInOrder(names []string) []CategoryCount {
	index := make(map[string]int)
	var counts []CategoryCount
	for _, name := range names {
		if i, ok := index[name]; ok {
			counts[i].Count++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, CategoryCount{Name: name, Count: 1})
	}
	slices.SortStableFunc(counts, func(a, b CategoryCount) int { return b.Count - a.Count })
	return counts
}

func safeDiv(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
