package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

const (
	liveSource   = "foursquare_live"
	maxBodyBytes = 1 << 20

	msgInternal = "Internal server error"
)

// envelope is the body of every API response. Failures always carry Error.
type envelope struct {
	Success     bool       `json:"success"`
	Data        any        `json:"data,omitempty"`
	Error       string     `json:"error,omitempty"`
	Count       *int       `json:"count,omitempty"`
	Source      string     `json:"source,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
	Destination string     `json:"destination,omitempty"`
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, env envelope) {
	env.Success = true
	writeJSON(w, http.StatusOK, env)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

func countOf(n int) *int { return &n }

var errEmptyBody = errors.New("empty request body")

// decodeJSON reads a single JSON object from the request body into dst.
// An empty body yields errEmptyBody.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}
