package api

import (
	"context"

	"github.com/neexbeast/quietseason/internal/catalog"
	"github.com/neexbeast/quietseason/internal/ranking"
	"github.com/neexbeast/quietseason/internal/venue"
)

// CrowdCatalog defines the seasonal catalog reads needed by handlers.
// *catalog.Catalog satisfies this interface.
type CrowdCatalog interface {
	Names() []string
	Profiles() []catalog.Profile
	ByRegion(region string) []catalog.Profile
	ByMaxCrowd(limit int) []catalog.Profile
	Destination(name string) (catalog.Profile, error)
	Month(name string, month int) (catalog.MonthlyCrowd, error)
	BestTimeToVisit(name string) (catalog.BestTime, error)
	Ranking(name string) (catalog.Ranking, error)
	Trend(name string, month int) (catalog.Trend, error)
}

// CrowdEstimator defines the live venue estimates needed by handlers.
// *venue.Estimator satisfies this interface.
type CrowdEstimator interface {
	Snapshot(ctx context.Context, name string) (venue.CitySnapshot, error)
	Panel(ctx context.Context) []venue.CitySnapshot
}

// Recommender defines the preference ranking needed by handlers.
type Recommender interface {
	Recommend(prefs ranking.Preferences) []ranking.Recommendation
}

// Pinger is a dependency that can report its connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
