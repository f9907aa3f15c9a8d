package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/neexbeast/quietseason/internal/ranking"
)

// GetSearch handles GET /api/search. Every parameter is optional:
// destination, crowdLevel, budget, month, activities (comma separated), sort.
func (h *Handlers) GetSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := ranking.Filters{
		Destination: strings.TrimSpace(q.Get("destination")),
		TravelMonth: strings.TrimSpace(q.Get("month")),
		Activities:  splitList(q.Get("activities")),
		SortBy:      strings.TrimSpace(q.Get("sort")),
	}

	var ok bool
	if f.MaxCrowdLevel, ok = optionalInt(q.Get("crowdLevel")); !ok {
		writeError(w, http.StatusBadRequest, "Invalid crowdLevel. Must be an integer")
		return
	}
	if f.MaxBudget, ok = optionalInt(q.Get("budget")); !ok {
		writeError(w, http.StatusBadRequest, "Invalid budget. Must be an integer")
		return
	}
	if err := validate.Struct(f); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage("Invalid search filters", err))
		return
	}

	results := ranking.Search(h.catalog.Profiles(), f)
	writeData(w, envelope{Data: results, Count: countOf(len(results))})
}

// optionalInt parses s when present. ok is false only for a malformed value.
func optionalInt(s string) (v *int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
