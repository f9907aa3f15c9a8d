package venue

import "math"

const (
	emptyCrowdLevel   = 20
	unknownCrowdLevel = 25
	minCrowdLevel     = 10
	maxCrowdLevel     = 90
)

// CrowdLevel estimates how busy a set of venues is on a 10-90 scale.
//
// Each venue scores the mean of whichever factors it reports: popularity,
// rating scaled to 0-0.8, engagement from photo and tip counts, and a price
// penalty. Venues that report nothing are skipped. An empty set scores 20
// and a set with no scorable venue scores 25.
func CrowdLevel(venues []Venue) int {
	if len(venues) == 0 {
		return emptyCrowdLevel
	}

	total, valid := 0.0, 0
	for _, v := range venues {
		score, ok := venueScore(v)
		if !ok {
			continue
		}
		total += score
		valid++
	}

	if valid == 0 {
		return unknownCrowdLevel
	}

	level := total / float64(valid) * 100
	return int(math.Round(math.Min(math.Max(level, minCrowdLevel), maxCrowdLevel)))
}

func venueScore(v Venue) (float64, bool) {
	sum, factors := 0.0, 0

	if v.Popularity != nil {
		sum += *v.Popularity
		factors++
	}
	if v.Rating != nil {
		sum += *v.Rating / 10 * 0.8
		factors++
	}
	if v.Stats != nil {
		photos := math.Min(float64(deref(v.Stats.TotalPhotos))/100, 1)
		tips := math.Min(float64(deref(v.Stats.TotalTips))/50, 1)
		sum += (photos + tips) / 2 * 0.3
		factors++
	}
	if v.Price != nil {
		sum -= float64(*v.Price) / 4 * 0.2
		factors++
	}

	if factors == 0 {
		return 0, false
	}
	return sum / float64(factors), true
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Categorize maps a crowd level to low (<=35), moderate (<=65) or high.
func Categorize(level int) CrowdCategory {
	switch {
	case level <= 35:
		return CrowdLow
	case level <= 65:
		return CrowdModerate
	default:
		return CrowdHigh
	}
}
