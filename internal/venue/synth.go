package venue

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	iconPrefix = "https://ss3.4sqi.net/img/categories_v2/"
	iconSuffix = ".png"
)

type archetype struct {
	name       string
	categoryID int
	popularity float64
	rating     float64
}

var archetypes = []archetype{
	{"Restaurant", 13065, 0.75, 4.2},
	{"Café", 13032, 0.65, 4.4},
	{"Museum", 10027, 0.45, 4.1},
	{"Bar", 13003, 0.85, 3.9},
	{"Shop", 17069, 0.55, 4.0},
	{"Hotel", 19014, 0.60, 4.3},
	{"Park", 16032, 0.35, 4.5},
	{"Market", 17006, 0.90, 4.0},
	{"Gallery", 10005, 0.40, 4.2},
	{"Bakery", 13040, 0.70, 4.3},
	{"Bookstore", 17017, 0.30, 4.4},
	{"Theater", 10004, 0.50, 4.1},
	{"Spa", 18021, 0.45, 4.0},
	{"Gym", 18008, 0.65, 3.8},
	{"Library", 12013, 0.25, 4.6},
}

var streets = []string{"Main", "Central", "High", "Market", "Old Town", "New"}

// Synthesizer fabricates plausible venues for a city when the provider has none.
// It is safe for concurrent use.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthesizer returns a Synthesizer drawing from src, or from a randomly
// seeded source when src is nil.
func NewSynthesizer(src rand.Source) *Synthesizer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Synthesizer{rng: rand.New(src)}
}

// Generate returns count venues for city, cycling through the archetypes.
// Each archetype's base popularity and rating are scaled by a factor in [0.8, 1.2].
func (s *Synthesizer) Generate(city string, count int) []Venue {
	s.mu.Lock()
	defer s.mu.Unlock()

	slug := strings.ToLower(strings.Join(strings.Fields(city), "_"))
	venues := make([]Venue, 0, max(count, 0))

	for i := range max(count, 0) {
		a := archetypes[i%len(archetypes)]
		factor := 0.8 + s.rng.Float64()*0.4

		name := city + " " + a.name
		if a.name == "Restaurant" {
			name = "The " + name
		}
		if i > 0 {
			name = fmt.Sprintf("%s %d", name, i+1)
		}

		popularity := math.Min(math.Round(a.popularity*factor*100)/100, 1)
		rating := math.Round(a.rating*factor*10) / 10
		price := s.rng.IntN(4) + 1
		photos := s.rng.IntN(100) + 20
		ratings := s.rng.IntN(300) + 50
		tips := s.rng.IntN(50) + 10

		venues = append(venues, Venue{
			FsqID: fmt.Sprintf("sim_%s_%d", slug, i),
			Name:  name,
			Location: Location{
				FormattedAddress: fmt.Sprintf("%d %s Street, %s", s.rng.IntN(500)+1, streets[s.rng.IntN(len(streets))], city),
				Locality:         city,
			},
			Categories: []Category{{
				ID:   a.categoryID,
				Name: a.name,
				Icon: Icon{Prefix: iconPrefix, Suffix: iconSuffix},
			}},
			Popularity: &popularity,
			Rating:     &rating,
			Price:      &price,
			Stats: &Stats{
				TotalPhotos:  &photos,
				TotalRatings: &ratings,
				TotalTips:    &tips,
			},
		})
	}

	return venues
}
