package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/neexbeast/quietseason/internal/catalog"
	"github.com/neexbeast/quietseason/internal/ranking"
)

type monthRecommendation struct {
	Month          string          `json:"month"`
	CrowdLevel     int             `json:"crowdLevel"`
	Recommendation string          `json:"recommendation"`
	Factors        catalog.Factors `json:"factors"`
}

type destinationRecommendation struct {
	Destination                string               `json:"destination"`
	BestTimeToVisit            catalog.BestTime     `json:"bestTimeToVisit"`
	CurrentMonthRecommendation *monthRecommendation `json:"currentMonthRecommendation"`
	CrowdRanking               *catalog.Ranking     `json:"crowdRanking"`
}

// GetRecommendations handles GET /api/recommendations?destination=&maxCrowdLevel=&month=.
func (h *Handlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("destination"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "Destination parameter is required")
		return
	}

	profile, err := h.catalog.Destination(name)
	if err != nil {
		h.notFoundOrInternal(w, err, "Destination not found")
		return
	}

	best, err := h.catalog.BestTimeToVisit(profile.Destination)
	if err != nil {
		h.notFoundOrInternal(w, err, "Destination not found")
		return
	}

	// A parsable ceiling replaces the best months with every month at or under
	// it, unless no month qualifies.
	if maxLevel, err := strconv.Atoi(strings.TrimSpace(q.Get("maxCrowdLevel"))); err == nil {
		var suitable []string
		for _, m := range profile.YearlyData {
			if m.CrowdLevel <= maxLevel {
				suitable = append(suitable, m.MonthName)
			}
		}
		if len(suitable) > 0 {
			best.BestMonths = suitable
			best.Recommendation = fmt.Sprintf("Based on your crowd preference (≤%d%%), visit during %s",
				maxLevel, strings.Join(suitable, ", "))
		}
	}

	out := destinationRecommendation{
		Destination:     profile.Destination,
		BestTimeToVisit: best,
	}

	if month, err := strconv.Atoi(strings.TrimSpace(q.Get("month"))); err == nil {
		if rec, err := h.catalog.Month(profile.Destination, month); err == nil {
			out.CurrentMonthRecommendation = &monthRecommendation{
				Month:          rec.MonthName,
				CrowdLevel:     rec.CrowdLevel,
				Recommendation: rec.Recommendation,
				Factors:        rec.Factors,
			}
		}
	}

	if rank, err := h.catalog.Ranking(profile.Destination); err == nil {
		out.CrowdRanking = &rank
	}

	writeData(w, envelope{Data: out})
}

type preferencesRequest struct {
	Preferences *ranking.Preferences `json:"preferences"`
}

type recommendationResult struct {
	Recommendations []ranking.Recommendation `json:"recommendations"`
	Criteria        ranking.Preferences      `json:"criteria"`
	TotalMatches    int                      `json:"totalMatches"`
}

// PostRecommendations handles POST /api/recommendations with {"preferences": {...}}.
func (h *Handlers) PostRecommendations(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Preferences == nil {
		writeError(w, http.StatusBadRequest, "Preferences object is required")
		return
	}
	if err := validate.Struct(req.Preferences); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage("Invalid preferences", err))
		return
	}

	recs := h.ranker.Recommend(*req.Preferences)
	writeData(w, envelope{Data: recommendationResult{
		Recommendations: recs,
		Criteria:        *req.Preferences,
		TotalMatches:    len(recs),
	}})
}
