package ranking_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/quietseason/internal/catalog"
	"github.com/neexbeast/quietseason/internal/ranking"
)

func intPtr(v int) *int { return &v }

func profile(avg int, best ...int) catalog.Profile {
	p := catalog.Profile{Destination: "Test", Country: "Testland", AverageCrowdLevel: avg, BestMonths: best}
	return p
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.DefaultProfiles())
	require.NoError(t, err)
	return c
}

func names(recs []ranking.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Destination)
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		p     catalog.Profile
		prefs ranking.Preferences
		want  int
	}{
		{"low crowd under ceiling has no upper clamp", profile(25), ranking.Preferences{MaxCrowdLevel: intPtr(30)}, 120},
		{"no preferences, medium crowd", profile(33), ranking.Preferences{}, 110},
		{"no bonus above 40", profile(41), ranking.Preferences{}, 100},
		{"penalty over ceiling", profile(27), ranking.Preferences{MaxCrowdLevel: intPtr(20)}, 100 - 14 + 10},
		{"explicit zero ceiling", profile(10), ranking.Preferences{MaxCrowdLevel: intPtr(0)}, 100 - 20 + 20},
		{"floored at zero", profile(100), ranking.Preferences{MaxCrowdLevel: intPtr(0)}, 0},
		{"month name substring", profile(27, 10, 11), ranking.Preferences{Months: []ranking.MonthRef{"OCT"}}, 125},
		{"numeric month", profile(50, 4), ranking.Preferences{Months: []ranking.MonthRef{"4"}}, 115},
		{"no month match", profile(50, 4), ranking.Preferences{Months: []ranking.MonthRef{"December"}}, 100},
		{"low crowd and month", profile(10, 1), ranking.Preferences{MaxCrowdLevel: intPtr(30), Months: []ranking.MonthRef{"jan"}}, 135},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ranking.Score(tc.p, tc.prefs))
		})
	}
}

func TestRecommend_NoPreferences(t *testing.T) {
	r := ranking.New(defaultCatalog(t))

	recs := r.Recommend(ranking.Preferences{})
	assert.Equal(t, []string{
		"Faroe Islands", "Raja Ampat", "Estonian Islands", "Azores", "Saguenay Fjord", "North Macedonia",
	}, names(recs))
	assert.Equal(t, 120, recs[0].Score)
	assert.Equal(t, "Denmark", recs[0].Country)
	assert.Equal(t, []string{"May", "September", "October"}, recs[0].BestMonths)
	assert.Contains(t, recs[0].Recommendation, "Visit during May or September or October")
}

func TestRecommend_CeilingFilters(t *testing.T) {
	r := ranking.New(defaultCatalog(t))

	recs := r.Recommend(ranking.Preferences{MaxCrowdLevel: intPtr(21)})
	assert.Equal(t, []string{"Faroe Islands", "Estonian Islands"}, names(recs))

	assert.Empty(t, r.Recommend(ranking.Preferences{MaxCrowdLevel: intPtr(0)}))
}

func TestRecommend_MonthFilters(t *testing.T) {
	r := ranking.New(defaultCatalog(t))

	recs := r.Recommend(ranking.Preferences{Months: []ranking.MonthRef{"may"}})
	assert.Equal(t, []string{"Faroe Islands", "Raja Ampat", "Estonian Islands", "North Macedonia"}, names(recs))
	assert.Equal(t, 135, recs[0].Score)
	assert.Equal(t, 125, recs[3].Score)
}

func TestRecommend_AtMostTen(t *testing.T) {
	var profiles []catalog.Profile
	for i := range 14 {
		p := catalog.Profile{Destination: fmt.Sprintf("Place %02d", i), BestMonths: []int{6}}
		for m := 1; m <= 12; m++ {
			p.YearlyData = append(p.YearlyData, catalog.MonthlyCrowd{Month: m, CrowdLevel: 10 + i})
		}
		profiles = append(profiles, p)
	}
	c, err := catalog.New(profiles)
	require.NoError(t, err)

	recs := ranking.New(c).Recommend(ranking.Preferences{})
	require.Len(t, recs, 10)

	// every level is at most 25, so all scores tie and catalog order decides
	for i, rec := range recs {
		assert.Equal(t, fmt.Sprintf("Place %02d", i), rec.Destination)
	}
}

func TestRecommend_EmptyIsNotNil(t *testing.T) {
	r := ranking.New(defaultCatalog(t))

	recs := r.Recommend(ranking.Preferences{Months: []ranking.MonthRef{"Smarch"}})
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestMonthRef_UnmarshalJSON(t *testing.T) {
	var prefs ranking.Preferences
	require.NoError(t, json.Unmarshal([]byte(`{"months":[5,"june"],"maxCrowdLevel":0}`), &prefs))

	assert.Equal(t, []ranking.MonthRef{"5", "june"}, prefs.Months)
	require.NotNil(t, prefs.MaxCrowdLevel)
	assert.Equal(t, 0, *prefs.MaxCrowdLevel)

	assert.Error(t, json.Unmarshal([]byte(`{"months":[true]}`), &prefs))
}
