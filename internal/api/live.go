package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/neexbeast/quietseason/internal/venue"
)

// GetLiveCrowds handles GET /api/live-crowds. With ?city= it returns that
// panel city's snapshot, otherwise the whole panel.
func (h *Handlers) GetLiveCrowds(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	if city != "" {
		snap, err := h.estimator.Snapshot(r.Context(), city)
		if err != nil {
			if errors.Is(err, venue.ErrUnknownCity) {
				writeError(w, http.StatusNotFound, "City not found in sample cities")
				return
			}
			h.log.Error("city snapshot failed", "city", city, "err", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch live crowd data")
			return
		}
		writeData(w, envelope{Data: snap, Source: liveSource})
		return
	}

	panel := h.estimator.Panel(r.Context())
	now := h.now().UTC()
	writeData(w, envelope{
		Data:        panel,
		Count:       countOf(len(panel)),
		Source:      liveSource,
		LastUpdated: &now,
	})
}

type bulkCitiesRequest struct {
	Cities []string `json:"cities"`
}

type bulkCityItem struct {
	City  string              `json:"city"`
	Found bool                `json:"found"`
	Data  *venue.CitySnapshot `json:"data,omitempty"`
	Error string              `json:"error,omitempty"`
}

// PostLiveCrowds handles POST /api/live-crowds with {"cities": [...]}.
// Each requested name yields one item; unknown cities are reported inline.
func (h *Handlers) PostLiveCrowds(w http.ResponseWriter, r *http.Request) {
	var req bulkCitiesRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Cities == nil {
		writeError(w, http.StatusBadRequest, "Invalid request. Expected array of city names")
		return
	}

	items := make([]bulkCityItem, 0, len(req.Cities))
	for _, name := range req.Cities {
		item := bulkCityItem{City: name}
		snap, err := h.estimator.Snapshot(r.Context(), name)
		switch {
		case err == nil:
			item.Found = true
			item.Data = &snap
		case errors.Is(err, venue.ErrUnknownCity):
			item.Error = "City not found in sample cities"
		default:
			h.log.Warn("bulk city snapshot failed", "city", name, "err", err)
			item.Error = "Failed to fetch live crowd data"
		}
		items = append(items, item)
	}

	writeData(w, envelope{Data: items, Count: countOf(len(items))})
}

// GetLiveAnalytics handles GET /api/live-analytics.
func (h *Handlers) GetLiveAnalytics(w http.ResponseWriter, r *http.Request) {
	report := venue.BuildReport(h.estimator.Panel(r.Context()), h.now())
	writeData(w, envelope{Data: report, Source: liveSource})
}

type analyticsRequest struct {
	TimeRange string   `json:"timeRange" validate:"max=64"`
	Cities    []string `json:"cities" validate:"max=50"`
}

type customFilter struct {
	TimeRange string    `json:"timeRange"`
	Cities    any       `json:"cities"`
	AppliedAt time.Time `json:"appliedAt"`
}

type customAnalytics struct {
	venue.Analytics
	CustomFilter customFilter `json:"customFilter"`
}

// PostLiveAnalytics handles POST /api/live-analytics with an optional
// {"timeRange": "...", "cities": [...]} filter. An empty body is allowed.
func (h *Handlers) PostLiveAnalytics(w http.ResponseWriter, r *http.Request) {
	var req analyticsRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage("Invalid analytics filter", err))
		return
	}

	now := h.now()
	snapshots := venue.FilterSnapshots(h.estimator.Panel(r.Context()), req.Cities)

	filter := customFilter{TimeRange: req.TimeRange, Cities: req.Cities, AppliedAt: now.UTC()}
	if filter.TimeRange == "" {
		filter.TimeRange = "current"
	}
	if len(req.Cities) == 0 {
		filter.Cities = "all"
	}

	writeData(w, envelope{
		Data:   customAnalytics{Analytics: venue.Analyze(snapshots, now), CustomFilter: filter},
		Source: liveSource,
	})
}
