package venue

import (
	"context"
	"log/slog"
	"time"
)

const maxSyntheticVenues = 15

// Fallback reasons reported to the Recorder.
const (
	FallbackNoProvider = "no_provider"
	FallbackError      = "error"
	FallbackEmpty      = "empty"
)

// Provider is the interface satisfied by FoursquareClient.
type Provider interface {
	Search(ctx context.Context, city City, limit int) ([]Venue, error)
}

// Cache stores raw provider results per city.
// Get returns nil, nil on a miss.
type Cache interface {
	Get(ctx context.Context, city string) ([]Venue, error)
	Set(ctx context.Context, city string, venues []Venue) error
}

// Recorder receives venue pipeline measurements.
type Recorder interface {
	ProviderFallback(ctx context.Context, reason string)
	PanelCityFailure(ctx context.Context)
	SnapshotDuration(ctx context.Context, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ProviderFallback(context.Context, string) {}
func (nopRecorder) PanelCityFailure(context.Context) {}
func (nopRecorder) SnapshotDuration(context.Context, time.Duration) {}

// Fetcher loads venues for a city from the cache or the provider and falls
// back to synthetic venues when neither has any.
type Fetcher struct {
	provider Provider
	cache    Cache
	synth    *Synthesizer
	metrics  Recorder
	log      *slog.Logger
}

// NewFetcher constructs a Fetcher. provider, cache, rec and log may be nil;
// a nil provider means every fetch is synthesised.
func NewFetcher(provider Provider, synth *Synthesizer, cache Cache, rec Recorder, log *slog.Logger) *Fetcher {
	if synth == nil {
		synth = NewSynthesizer(nil)
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{provider: provider, cache: cache, synth: synth, metrics: rec, log: log}
}

// FetchVenues returns up to limit venues for city. It never fails: provider
// errors and empty results are logged and replaced by synthetic venues.
func (f *Fetcher) FetchVenues(ctx context.Context, city City, limit int) VenueSet {
	if f.cache != nil {
		cached, err := f.cache.Get(ctx, city.Name)
		if err != nil {
			f.log.Warn("venue cache get failed", "city", city.Name, "err", err)
		} else if len(cached) > 0 {
			return VenueSet{Venues: cached[:min(limit, len(cached))]}
		}
	}

	if f.provider == nil {
		return f.fallback(ctx, city, limit, FallbackNoProvider)
	}

	venues, err := f.provider.Search(ctx, city, limit)
	if err != nil {
		f.log.Warn("venue provider failed, using simulated venues", "city", city.Name, "err", err)
		return f.fallback(ctx, city, limit, FallbackError)
	}
	if len(venues) == 0 {
		f.log.Warn("venue provider returned no venues, using simulated venues", "city", city.Name)
		return f.fallback(ctx, city, limit, FallbackEmpty)
	}

	if f.cache != nil {
		if err := f.cache.Set(ctx, city.Name, venues); err != nil {
			f.log.Warn("venue cache set failed", "city", city.Name, "err", err)
		}
	}

	return VenueSet{Venues: venues}
}

func (f *Fetcher) fallback(ctx context.Context, city City, limit int, reason string) VenueSet {
	f.metrics.ProviderFallback(ctx, reason)
	return VenueSet{
		Venues:    f.synth.Generate(city.Name, min(limit, maxSyntheticVenues)),
		Simulated: true,
	}
}
