// Package catalog holds the seasonal crowd catalog: a read-only registry of
// destinations and their month-by-month crowd levels.
package catalog

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Catalog is an immutable registry of destination profiles.
// It is built once at startup and is safe for concurrent reads.
type Catalog struct {
	profiles []Profile
	byName   map[string]int
}

// New validates profiles, derives each average crowd level, and returns a
// Catalog that owns deep copies of them. Input order is the catalog order.
func New(profiles []Profile) (*Catalog, error) {
	c := &Catalog{
		profiles: make([]Profile, 0, len(profiles)),
		byName:   make(map[string]int, len(profiles)),
	}

	for i, p := range profiles {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("profile %d (%q): %w", i, p.Destination, err)
		}

		key := strings.ToLower(p.Destination)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("profile %d (%q): %w: duplicate destination", i, p.Destination, ErrInvalidProfile)
		}

		cp := clone(p)
		slices.SortFunc(cp.YearlyData, func(a, b MonthlyCrowd) int { return a.Month - b.Month })
		for j := range cp.YearlyData {
			cp.YearlyData[j].MonthName = MonthName(cp.YearlyData[j].Month)
		}
		cp.AverageCrowdLevel = averageLevel(cp.YearlyData)

		c.byName[key] = len(c.profiles)
		c.profiles = append(c.profiles, cp)
	}

	return c, nil
}

func validate(p Profile) error {
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("%w: empty destination name", ErrInvalidProfile)
	}
	if len(p.YearlyData) != 12 {
		return fmt.Errorf("%w: expected 12 monthly records, got %d", ErrInvalidProfile, len(p.YearlyData))
	}

	var seen [13]bool
	for _, m := range p.YearlyData {
		if m.Month < 1 || m.Month > 12 {
			return fmt.Errorf("%w: month %d out of range", ErrInvalidProfile, m.Month)
		}
		if seen[m.Month] {
			return fmt.Errorf("%w: duplicate month %d", ErrInvalidProfile, m.Month)
		}
		seen[m.Month] = true
		if m.CrowdLevel < 0 || m.CrowdLevel > 100 {
			return fmt.Errorf("%w: crowd level %d for month %d out of range", ErrInvalidProfile, m.CrowdLevel, m.Month)
		}
		if m.Factors.CruiseShips < 0 {
			return fmt.Errorf("%w: negative cruise ship count for month %d", ErrInvalidProfile, m.Month)
		}
	}

	for _, m := range slices.Concat(p.BestMonths, p.PeakMonths) {
		if m < 1 || m > 12 {
			return fmt.Errorf("%w: best/peak month %d out of range", ErrInvalidProfile, m)
		}
	}

	return nil
}

func averageLevel(data []MonthlyCrowd) int {
	if len(data) == 0 {
		return 0
	}
	sum := 0
	for _, m := range data {
		sum += m.CrowdLevel
	}
	return int(math.Round(float64(sum) / float64(len(data))))
}

func clone(p Profile) Profile {
	cp := p
	cp.YearlyData = make([]MonthlyCrowd, len(p.YearlyData))
	for i, m := range p.YearlyData {
		m.Factors.PublicHolidays = slices.Clone(m.Factors.PublicHolidays)
		m.Factors.LocalEvents = slices.Clone(m.Factors.LocalEvents)
		cp.YearlyData[i] = m
	}
	cp.PeakMonths = slices.Clone(p.PeakMonths)
	cp.BestMonths = slices.Clone(p.BestMonths)
	cp.Listing.Activities = slices.Clone(p.Listing.Activities)
	cp.Listing.Highlights = slices.Clone(p.Listing.Highlights)
	return cp
}

// Destination returns the profile whose canonical name matches name, ignoring case.
// The returned profile shares backing arrays with the catalog and must not be mutated.
func (c *Catalog) Destination(name string) (Profile, error) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("destination %q: %w", name, ErrNotFound)
	}
	return c.profiles[i], nil
}

// Month returns the record for the given destination and month.
func (c *Catalog) Month(name string, month int) (MonthlyCrowd, error) {
	p, err := c.Destination(name)
	if err != nil {
		return MonthlyCrowd{}, err
	}
	if rec, ok := monthRecord(p, month); ok {
		return rec, nil
	}
	return MonthlyCrowd{}, fmt.Errorf("month %d for %q: %w", month, name, ErrNotFound)
}

func monthRecord(p Profile, month int) (MonthlyCrowd, bool) {
	for _, m := range p.YearlyData {
		if m.Month == month {
			return m, true
		}
	}
	return MonthlyCrowd{}, false
}

// Names returns all canonical destination names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for _, p := range c.profiles {
		names = append(names, p.Destination)
	}
	return names
}

// Profiles returns every profile in catalog order.
func (c *Catalog) Profiles() []Profile {
	return slices.Clone(c.profiles)
}

// RankByAverageCrowd returns all profiles sorted ascending by average crowd
// level. Ties keep catalog order.
func (c *Catalog) RankByAverageCrowd() []Profile {
	ranked := slices.Clone(c.profiles)
	slices.SortStableFunc(ranked, func(a, b Profile) int {
		return a.AverageCrowdLevel - b.AverageCrowdLevel
	})
	return ranked
}

// ByRegion returns the profiles in region, ignoring case.
func (c *Catalog) ByRegion(region string) []Profile {
	var out []Profile
	for _, p := range c.profiles {
		if strings.EqualFold(p.Region, region) {
			out = append(out, p)
		}
	}
	return out
}

// ByMaxCrowd returns the profiles whose average crowd level is at most limit.
func (c *Catalog) ByMaxCrowd(limit int) []Profile {
	var out []Profile
	for _, p := range c.profiles {
		if p.AverageCrowdLevel <= limit {
			out = append(out, p)
		}
	}
	return out
}

// BestTimeToVisit summarises the best and peak months of a destination.
func (c *Catalog) BestTimeToVisit(name string) (BestTime, error) {
	p, err := c.Destination(name)
	if err != nil {
		return BestTime{}, err
	}

	best := p.BestMonthNames()
	worst := p.PeakMonthNames()

	sum, n := 0, 0
	for _, m := range p.YearlyData {
		if slices.Contains(p.BestMonths, m.Month) {
			sum += m.CrowdLevel
			n++
		}
	}
	avg := 0
	if n > 0 {
		avg = int(math.Round(float64(sum) / float64(n)))
	}

	return BestTime{
		BestMonths:  best,
		WorstMonths: worst,
		Recommendation: fmt.Sprintf(
			"Visit during %s for the best experience with only %d%% crowd levels. Avoid %s when crowds reach peak levels.",
			strings.Join(best, " or "), avg, strings.Join(worst, " and "),
		),
	}, nil
}

const (
	forecastExcellent = "Excellent time to visit - very low crowds and authentic experiences."
	forecastGood      = "Good time to visit - manageable crowds with good weather."
	forecastPeak      = "Peak season - expect crowds but best weather and activities."
)

// Forecast reports crowd levels for the requested months in the order given.
func (c *Catalog) Forecast(name string, months []int) (Forecast, error) {
	p, err := c.Destination(name)
	if err != nil {
		return Forecast{}, err
	}

	f := Forecast{
		Months:      make([]string, 0, len(months)),
		CrowdLevels: make([]int, 0, len(months)),
	}

	sum := 0
	for _, m := range months {
		level := 0
		if rec, ok := monthRecord(p, m); ok {
			level = rec.CrowdLevel
		} else {
			f.MissingMonths = append(f.MissingMonths, m)
		}
		f.Months = append(f.Months, MonthName(m))
		f.CrowdLevels = append(f.CrowdLevels, level)
		sum += level
	}

	avg := 0.0
	if len(months) > 0 {
		avg = float64(sum) / float64(len(months))
	}
	f.AverageCrowd = int(math.Round(avg))

	switch {
	case avg <= 25:
		f.Recommendation = forecastExcellent
	case avg <= 40:
		f.Recommendation = forecastGood
	default:
		f.Recommendation = forecastPeak
	}

	return f, nil
}

// Ranking returns the position of a destination in RankByAverageCrowd.
func (c *Catalog) Ranking(name string) (Ranking, error) {
	p, err := c.Destination(name)
	if err != nil {
		return Ranking{}, err
	}

	ranked := c.RankByAverageCrowd()
	idx := slices.IndexFunc(ranked, func(r Profile) bool { return r.Destination == p.Destination })
	total := len(ranked)

	return Ranking{
		Rank:              idx + 1,
		TotalDestinations: total,
		Percentile:        int(math.Round((1 - float64(idx)/float64(total)) * 100)),
	}, nil
}

const trendThreshold = 5

// Trend compares a month's crowd level with the following month's.
// December is compared with January.
func (c *Catalog) Trend(name string, month int) (Trend, error) {
	cur, err := c.Month(name, month)
	if err != nil {
		return "", err
	}
	next, err := c.Month(name, month%12+1)
	if err != nil {
		return "", err
	}

	switch diff := next.CrowdLevel - cur.CrowdLevel; {
	case diff > trendThreshold:
		return TrendRising, nil
	case diff < -trendThreshold:
		return TrendFalling, nil
	default:
		return TrendSteady, nil
	}
}
