package catalog

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a destination or month is not in the catalog.
var ErrNotFound = errors.New("not found")

// ErrInvalidProfile is returned by New when a profile breaks a catalog invariant.
var ErrInvalidProfile = errors.New("invalid profile")

// Weather is the ordinal weather quality of a month.
type Weather string

const (
	WeatherPoor      Weather = "poor"
	WeatherFair      Weather = "fair"
	WeatherGood      Weather = "good"
	WeatherExcellent Weather = "excellent"
)

// Factors holds the conditions that drive a month's crowd level.
type Factors struct {
	Weather            Weather  `json:"weather"`
	SchoolHolidays     bool     `json:"schoolHolidays"`
	PublicHolidays     []string `json:"publicHolidays"`
	LocalEvents        []string `json:"localEvents"`
	CruiseShips        int      `json:"cruiseShips"`
	WeatherDescription string   `json:"weatherDescription"`
}

// MonthlyCrowd is one calendar month's crowd estimate for a destination.
type MonthlyCrowd struct {
	Month          int     `json:"month"`
	MonthName      string  `json:"monthName"`
	CrowdLevel     int     `json:"crowdLevel"`
	Factors        Factors `json:"factors"`
	Recommendation string  `json:"recommendation"`
}

// Listing is the presentation metadata shown on search results.
type Listing struct {
	PriceRange      string   `json:"priceRange"`
	AverageCost     int      `json:"averageCost"`
	Activities      []string `json:"activities"`
	Highlights      []string `json:"highlights"`
	Description     string   `json:"description"`
	Airport         string   `json:"airport"`
	AirportDistance string   `json:"airportDistance"`
}

// Profile is a single destination with its twelve monthly records.
// AverageCrowdLevel is derived by New and ignored on input.
type Profile struct {
	Destination       string         `json:"destination"`
	Country           string         `json:"country"`
	Region            string         `json:"region"`
	YearlyData        []MonthlyCrowd `json:"yearlyData"`
	PeakMonths        []int          `json:"peakMonths"`
	BestMonths        []int          `json:"bestMonths"`
	AverageCrowdLevel int            `json:"averageCrowdLevel"`
	LastUpdated       time.Time      `json:"lastUpdated"`
	Listing           Listing        `json:"listing"`
}

// BestMonthNames returns the full names of the profile's best months.
func (p Profile) BestMonthNames() []string {
	return monthNames(p.BestMonths)
}

// PeakMonthNames returns the full names of the profile's peak months.
func (p Profile) PeakMonthNames() []string {
	return monthNames(p.PeakMonths)
}

// BestTime is the best-time-to-visit summary for one destination.
type BestTime struct {
	BestMonths     []string `json:"bestMonths"`
	WorstMonths    []string `json:"worstMonths"`
	Recommendation string   `json:"recommendation"`
}

// Forecast is the crowd outlook for an arbitrary list of months.
// Months without a record report a crowd level of 0 and are listed in MissingMonths.
type Forecast struct {
	Months         []string `json:"months"`
	CrowdLevels    []int    `json:"crowdLevels"`
	AverageCrowd   int      `json:"averageCrowd"`
	MissingMonths  []int    `json:"missingMonths,omitempty"`
	Recommendation string   `json:"recommendation"`
}

// Ranking places a destination among all destinations by average crowd level.
type Ranking struct {
	Rank              int `json:"rank"`
	TotalDestinations int `json:"totalDestinations"`
	Percentile        int `json:"percentile"`
}

// Trend is the direction crowds move into the following month.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendSteady  Trend = "steady"
)
