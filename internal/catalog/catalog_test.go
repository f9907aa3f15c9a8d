package catalog_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/quietseason/internal/catalog"
)

func newDefault(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.DefaultProfiles())
	require.NoError(t, err)
	return c
}

// flatProfile builds a valid profile where every month has the same level.
func flatProfile(name string, level int) catalog.Profile {
	p := catalog.Profile{Destination: name, Country: "Testland", Region: "Nowhere"}
	for m := 1; m <= 12; m++ {
		p.YearlyData = append(p.YearlyData, catalog.MonthlyCrowd{Month: m, CrowdLevel: level})
	}
	return p
}

func TestDefaultCatalog_AverageMatchesMonthlyMean(t *testing.T) {
	c := newDefault(t)

	for _, p := range c.Profiles() {
		require.Len(t, p.YearlyData, 12, p.Destination)
		sum := 0
		for i, m := range p.YearlyData {
			assert.Equal(t, i+1, m.Month, "%s months in calendar order", p.Destination)
			assert.NotEmpty(t, m.MonthName)
			sum += m.CrowdLevel
		}
		assert.InDelta(t, float64(sum)/12, float64(p.AverageCrowdLevel), 0.5, p.Destination)
	}
}

func TestDefaultProfiles_ReturnsFreshCopy(t *testing.T) {
	a := catalog.DefaultProfiles()
	a[0].YearlyData[0].CrowdLevel = 99
	a[0].BestMonths[0] = 1

	b := catalog.DefaultProfiles()
	assert.Equal(t, 15, b[0].YearlyData[0].CrowdLevel)
	assert.Equal(t, 10, b[0].BestMonths[0])
}

func TestNew_CopiesInput(t *testing.T) {
	profiles := catalog.DefaultProfiles()
	c, err := catalog.New(profiles)
	require.NoError(t, err)

	profiles[0].YearlyData[0].CrowdLevel = 99

	rec, err := c.Month("Azores", 1)
	require.NoError(t, err)
	assert.Equal(t, 15, rec.CrowdLevel)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]catalog.Profile) []catalog.Profile
	}{
		{"empty name", func(ps []catalog.Profile) []catalog.Profile {
			ps[0].Destination = "  "
			return ps
		}},
		{"eleven months", func(ps []catalog.Profile) []catalog.Profile {
			ps[0].YearlyData = ps[0].YearlyData[:11]
			return ps
		}},
		{"duplicate month", func(ps []catalog.Profile) []catalog.Profile {
			ps[0].YearlyData[1].Month = 1
			return ps
		}},
		{"month out of range", func(ps []catalog.Profile) []catalog.Profile {
			ps[0].YearlyData[11].Month = 13
			return ps
		}},
		{"level above 100", func(ps []catalog.Profile) []catalog.Profile {
			ps[0].YearlyData[0].CrowdLevel = 101
			return ps
		}},
		{"negative cruise ships", func(ps []catalog.Profile) []catalog.Profile {
			ps[0].YearlyData[0].Factors.CruiseShips = -1
			return ps
		}},
		{"best month out of range", func(ps []catalog.Profile) []catalog.Profile {
			ps[0].BestMonths = []int{0}
			return ps
		}},
		{"duplicate destination", func(ps []catalog.Profile) []catalog.Profile {
			dup := catalog.DefaultProfiles()[0]
			dup.Destination = "AZORES"
			return append(ps, dup)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.New(tc.mutate(catalog.DefaultProfiles()))
			require.Error(t, err)
			assert.True(t, errors.Is(err, catalog.ErrInvalidProfile))
		})
	}
}

func TestNew_SortsMonthsIntoCalendarOrder(t *testing.T) {
	p := flatProfile("Shuffled", 30)
	p.YearlyData[0], p.YearlyData[11] = p.YearlyData[11], p.YearlyData[0]

	c, err := catalog.New([]catalog.Profile{p})
	require.NoError(t, err)

	got, err := c.Destination("Shuffled")
	require.NoError(t, err)
	assert.Equal(t, 1, got.YearlyData[0].Month)
	assert.Equal(t, "January", got.YearlyData[0].MonthName)
	assert.Equal(t, 12, got.YearlyData[11].Month)
}

func TestDestination_CaseInsensitive(t *testing.T) {
	c := newDefault(t)

	p, err := c.Destination("faroe islands")
	require.NoError(t, err)
	assert.Equal(t, "Faroe Islands", p.Destination)
	assert.Equal(t, "Denmark", p.Country)
	assert.Equal(t, 16, p.AverageCrowdLevel)
}

func TestDestination_NoPartialMatch(t *testing.T) {
	c := newDefault(t)

	_, err := c.Destination("Faroe")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestDestination_SurroundingSpaceIsNotTrimmed(t *testing.T) {
	c := newDefault(t)

	_, err := c.Destination(" Azores ")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestMonth(t *testing.T) {
	c := newDefault(t)

	rec, err := c.Month("Azores", 8)
	require.NoError(t, err)
	assert.Equal(t, 50, rec.CrowdLevel)
	assert.Equal(t, "August", rec.MonthName)
	assert.Equal(t, catalog.WeatherExcellent, rec.Factors.Weather)
	assert.Equal(t, 9, rec.Factors.CruiseShips)

	for _, month := range []int{0, 13, -1} {
		_, err := c.Month("Azores", month)
		assert.True(t, errors.Is(err, catalog.ErrNotFound), "month %d", month)
	}

	_, err = c.Month("Atlantis", 1)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestNames_CatalogOrder(t *testing.T) {
	c := newDefault(t)

	assert.Equal(t, []string{
		"Azores", "Faroe Islands", "Saguenay Fjord", "Raja Ampat", "North Macedonia", "Estonian Islands",
	}, c.Names())
}

func TestRankByAverageCrowd(t *testing.T) {
	c := newDefault(t)

	var names []string
	for _, p := range c.RankByAverageCrowd() {
		names = append(names, p.Destination)
	}
	assert.Equal(t, []string{
		"Faroe Islands", "Estonian Islands", "Raja Ampat", "Saguenay Fjord", "Azores", "North Macedonia",
	}, names)
}

func TestRankByAverageCrowd_StableTies(t *testing.T) {
	c, err := catalog.New([]catalog.Profile{
		flatProfile("Gamma", 30),
		flatProfile("Alpha", 20),
		flatProfile("Beta", 30),
		flatProfile("Delta", 20),
	})
	require.NoError(t, err)

	var names []string
	for _, p := range c.RankByAverageCrowd() {
		names = append(names, p.Destination)
	}
	assert.Equal(t, []string{"Alpha", "Delta", "Gamma", "Beta"}, names)
}

func TestByRegionAndMaxCrowd(t *testing.T) {
	c := newDefault(t)

	assert.Len(t, c.ByRegion("europe"), 4)
	assert.Len(t, c.ByRegion("Asia"), 1)
	assert.Empty(t, c.ByRegion("Antarctica"))

	var names []string
	for _, p := range c.ByMaxCrowd(21) {
		names = append(names, p.Destination)
	}
	assert.Equal(t, []string{"Faroe Islands", "Estonian Islands"}, names)
}

func TestBestTimeToVisit(t *testing.T) {
	c := newDefault(t)

	bt, err := c.BestTimeToVisit("azores")
	require.NoError(t, err)
	assert.Equal(t, []string{"October", "November", "March", "April"}, bt.BestMonths)
	assert.Equal(t, []string{"July", "August"}, bt.WorstMonths)
	assert.Equal(t,
		"Visit during October or November or March or April for the best experience with only 21% crowd levels. Avoid July and August when crowds reach peak levels.",
		bt.Recommendation,
	)
}

func TestBestTimeToVisit_NoBestMonths(t *testing.T) {
	c, err := catalog.New([]catalog.Profile{flatProfile("Plain", 40)})
	require.NoError(t, err)

	bt, err := c.BestTimeToVisit("Plain")
	require.NoError(t, err)
	assert.Empty(t, bt.BestMonths)
	assert.Contains(t, bt.Recommendation, "only 0% crowd levels")
}

func TestBestTimeToVisit_UnknownDestination(t *testing.T) {
	c := newDefault(t)

	_, err := c.BestTimeToVisit("Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestForecast(t *testing.T) {
	c := newDefault(t)

	f, err := c.Forecast("Azores", []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"January", "February", "March"}, f.Months)
	assert.Equal(t, []int{15, 12, 18}, f.CrowdLevels)
	assert.Equal(t, 15, f.AverageCrowd)
	assert.Empty(t, f.MissingMonths)
	assert.Equal(t, "Excellent time to visit - very low crowds and authentic experiences.", f.Recommendation)
}

func TestForecast_Bands(t *testing.T) {
	c := newDefault(t)

	good, err := c.Forecast("Azores", []int{6, 9})
	require.NoError(t, err)
	assert.Equal(t, 35, good.AverageCrowd)
	assert.Equal(t, "Good time to visit - manageable crowds with good weather.", good.Recommendation)

	peak, err := c.Forecast("Azores", []int{7, 8})
	require.NoError(t, err)
	assert.Equal(t, 48, peak.AverageCrowd)
	assert.Equal(t, "Peak season - expect crowds but best weather and activities.", peak.Recommendation)
}

func TestForecast_MissingMonthsUseZero(t *testing.T) {
	c := newDefault(t)

	f, err := c.Forecast("Azores", []int{8, 14})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 0}, f.CrowdLevels)
	assert.Equal(t, []int{14}, f.MissingMonths)
	assert.Equal(t, "", f.Months[1])
	assert.Equal(t, 25, f.AverageCrowd)
}

func TestForecast_EmptyMonths(t *testing.T) {
	c := newDefault(t)

	f, err := c.Forecast("Azores", nil)
	require.NoError(t, err)
	assert.Empty(t, f.CrowdLevels)
	assert.Equal(t, 0, f.AverageCrowd)
}

func TestForecast_UnknownDestination(t *testing.T) {
	c := newDefault(t)

	_, err := c.Forecast("Atlantis", []int{1})
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestRanking(t *testing.T) {
	c := newDefault(t)

	r, err := c.Ranking("Faroe Islands")
	require.NoError(t, err)
	assert.Equal(t, catalog.Ranking{Rank: 1, TotalDestinations: 6, Percentile: 100}, r)

	r, err = c.Ranking("north macedonia")
	require.NoError(t, err)
	assert.Equal(t, 6, r.Rank)
	assert.Equal(t, int(math.Round((1-5.0/6.0)*100)), r.Percentile)

	_, err = c.Ranking("Atlantis")
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestTrend(t *testing.T) {
	c := newDefault(t)

	tests := []struct {
		month int
		want  catalog.Trend
	}{
		{6, catalog.TrendRising},   // 35 -> 45
		{8, catalog.TrendFalling},  // 50 -> 35
		{3, catalog.TrendSteady},   // 18 -> 22
		{12, catalog.TrendSteady},  // 20 -> 15, wraps to January
		{10, catalog.TrendFalling}, // 25 -> 18
	}
	for _, tc := range tests {
		got, err := c.Trend("Azores", tc.month)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "month %d", tc.month)
	}

	_, err := c.Trend("Azores", 13)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"4", 4, true},
		{" 12 ", 12, true},
		{"April", 4, true},
		{"apr", 4, true},
		{"SEPTEMBER", 9, true},
		{"0", 0, false},
		{"13", 13, false},
		{"ju", 0, false},
		{"Smarch", 0, false},
	}
	for _, tc := range tests {
		got, ok := catalog.ParseMonth(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}
