package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthHandlerFunc returns an http.HandlerFunc that pings every configured
// dependency. Any failure turns the response into 503 "degraded".
func HealthHandlerFunc(checks map[string]Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))

		for name, p := range checks {
			if err := p.Ping(ctx); err != nil {
				log.Error("health check: ping failed", "dependency", name, "err", err)
				results[name] = "error"
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		body := map[string]any{"status": "ok", "checks": results}
		if status != http.StatusOK {
			body["status"] = "degraded"
			body["success"] = false
			body["error"] = "One or more dependencies are unavailable"
		}
		writeJSON(w, status, body)
	}
}
