package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/neexbeast/quietseason/internal/catalog"
)

// monthlyView is one month of a destination together with where crowds go next.
type monthlyView struct {
	catalog.MonthlyCrowd
	Trend catalog.Trend `json:"trend"`
}

// GetCrowdData handles GET /api/crowd-data.
// No destination → names, optionally narrowed by ?region= and ?maxCrowdLevel=.
// Destination → full profile, or one month with ?month=.
func (h *Handlers) GetCrowdData(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("destination"))

	if name == "" {
		names, ok := h.filteredNames(q.Get("region"), q.Get("maxCrowdLevel"))
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid maxCrowdLevel. Must be an integer")
			return
		}
		writeData(w, envelope{Data: names, Count: countOf(len(names))})
		return
	}

	profile, err := h.catalog.Destination(name)
	if err != nil {
		h.notFoundOrInternal(w, err, "Destination not found")
		return
	}

	if raw := q.Get("month"); raw != "" {
		month, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || month < 1 || month > 12 {
			writeError(w, http.StatusBadRequest, "Invalid month. Must be 1-12")
			return
		}

		rec, err := h.catalog.Month(profile.Destination, month)
		if err != nil {
			h.notFoundOrInternal(w, err, "Monthly data not found")
			return
		}
		trend, err := h.catalog.Trend(profile.Destination, month)
		if err != nil {
			h.log.Warn("trend lookup failed", "destination", profile.Destination, "month", month, "err", err)
		}

		writeData(w, envelope{
			Data:        monthlyView{MonthlyCrowd: rec, Trend: trend},
			Destination: profile.Destination,
		})
		return
	}

	writeData(w, envelope{Data: profile})
}

type bulkCrowdRequest struct {
	Destinations []string `json:"destinations"`
}

type bulkCrowdItem struct {
	Destination string           `json:"destination"`
	Found       bool             `json:"found"`
	Data        *catalog.Profile `json:"data"`
}

// PostCrowdData handles POST /api/crowd-data with {"destinations": [...]}.
func (h *Handlers) PostCrowdData(w http.ResponseWriter, r *http.Request) {
	var req bulkCrowdRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Destinations == nil {
		writeError(w, http.StatusBadRequest, "Invalid request. Expected array of destinations")
		return
	}

	items := make([]bulkCrowdItem, 0, len(req.Destinations))
	for _, name := range req.Destinations {
		item := bulkCrowdItem{Destination: name}
		p, err := h.catalog.Destination(name)
		switch {
		case err == nil:
			item.Found = true
			item.Data = &p
		case !errors.Is(err, catalog.ErrNotFound):
			h.log.Error("bulk destination lookup failed", "destination", name, "err", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
			return
		}
		items = append(items, item)
	}

	writeData(w, envelope{Data: items, Count: countOf(len(items))})
}

// filteredNames lists catalog names in region (any when empty) whose average
// crowd level is at most rawMax (any when empty). ok is false for a malformed rawMax.
func (h *Handlers) filteredNames(region, rawMax string) (names []string, ok bool) {
	ceiling, ok := optionalInt(rawMax)
	if !ok {
		return nil, false
	}

	profiles := h.catalog.Profiles()
	if region = strings.TrimSpace(region); region != "" {
		profiles = h.catalog.ByRegion(region)
	}

	var allowed map[string]bool
	if ceiling != nil {
		allowed = map[string]bool{}
		for _, p := range h.catalog.ByMaxCrowd(*ceiling) {
			allowed[p.Destination] = true
		}
	}

	names = []string{}
	for _, p := range profiles {
		if allowed == nil || allowed[p.Destination] {
			names = append(names, p.Destination)
		}
	}
	return names, true
}
