package venue

import (
	"errors"
	"time"
)

// ErrUnknownCity is returned when a city is not part of the sample panel.
var ErrUnknownCity = errors.New("city not found in sample cities")

// Location holds the optional address fields of a venue.
type Location struct {
	Address          string `json:"address,omitempty"`
	Locality         string `json:"locality,omitempty"`
	Region           string `json:"region,omitempty"`
	Country          string `json:"country,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
}

// Icon is a provider category icon split into URL prefix and suffix.
type Icon struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// Category is a provider venue category.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon Icon   `json:"icon"`
}

// Stats holds engagement counters. Any counter may be absent.
type Stats struct {
	TotalPhotos  *int `json:"total_photos,omitempty"`
	TotalRatings *int `json:"total_ratings,omitempty"`
	TotalTips    *int `json:"total_tips,omitempty"`
}

// Venue is a single point of interest. Nil pointer fields were not reported.
type Venue struct {
	FsqID      string     `json:"fsq_id"`
	Name       string     `json:"name"`
	Location   Location   `json:"location"`
	Categories []Category `json:"categories"`
	Popularity *float64   `json:"popularity,omitempty"`
	Rating     *float64   `json:"rating,omitempty"`
	Price      *int       `json:"price,omitempty"`
	Stats      *Stats     `json:"stats,omitempty"`
}

// VenueSet is the result of a venue fetch. Simulated is true when the venues
// were synthesised locally instead of coming from the provider.
type VenueSet struct {
	Venues    []Venue
	Simulated bool
}

// City is a member of the sample panel.
type City struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Coords returns the "lat,lng" form the provider expects.
func (c City) Coords() string {
	return formatCoords(c.Lat, c.Lng)
}

// CrowdCategory is the coarse band of a crowd level.
type CrowdCategory string

const (
	CrowdLow      CrowdCategory = "low"
	CrowdModerate CrowdCategory = "moderate"
	CrowdHigh     CrowdCategory = "high"
)

// CitySnapshot is the crowd estimate for one city, computed per request.
type CitySnapshot struct {
	City          string        `json:"city"`
	Country       string        `json:"country"`
	TotalVenues   int           `json:"totalVenues"`
	AvgPopularity float64       `json:"avgPopularity"`
	AvgRating     float64       `json:"avgRating"`
	CrowdLevel    int           `json:"crowdLevel"`
	CrowdCategory CrowdCategory `json:"crowdCategory"`
	TopCategories []string      `json:"topCategories"`
	LastUpdated   time.Time     `json:"lastUpdated"`
	VenuesSample  []Venue       `json:"venuesSample"`
	Simulated     bool          `json:"simulated"`
}

// Analytics aggregates a set of city snapshots.
type Analytics struct {
	Timestamp      time.Time `json:"timestamp"`
	TotalVenues    int       `json:"totalVenues"`
	AvgCrowdLevel  int       `json:"avgCrowdLevel"`
	CitiesAnalyzed int       `json:"citiesAnalyzed"`
	PeakCrowdTime  string    `json:"peakCrowdTime"`
}

// Distribution counts cities per crowd category.
type Distribution struct {
	Low      int `json:"low"`
	Moderate int `json:"moderate"`
	High     int `json:"high"`
}

// CityHighlight names a single city in the report insights.
type CityHighlight struct {
	Name       string `json:"name"`
	CrowdLevel int    `json:"crowdLevel"`
	Venues     int    `json:"venues"`
}

// Insights are the headline facts of a report.
type Insights struct {
	BestCity            *CityHighlight `json:"bestCity"`
	WorstCity           *CityHighlight `json:"worstCity"`
	TotalVenuesAnalyzed int            `json:"totalVenuesAnalyzed"`
	AvgRating           float64        `json:"avgRating"`
}

// CategoryCount is how many cities list a category among their top categories.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CitySummary is one row of the per-city report table.
type CitySummary struct {
	Name       string        `json:"name"`
	CrowdLevel int           `json:"crowdLevel"`
	Category   CrowdCategory `json:"category"`
	Venues     int           `json:"venues"`
	Rating     float64       `json:"rating"`
}

// Report is the full analytics view of the panel.
type Report struct {
	Analytics
	Distribution  Distribution    `json:"distribution"`
	Insights      Insights        `json:"insights"`
	TopCategories []CategoryCount `json:"topCategories"`
	Cities        []CitySummary   `json:"cities"`
}
