package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

const defaultRequestsPerMinute = 60

// RouterOptions configures the cross-cutting middleware and health checks.
type RouterOptions struct {
	CORSOrigins       []string
	RequestsPerMinute int
	Checks            map[string]Pinger
}

// NewRouter builds and returns the Chi router with all routes configured.
// Rate limiting is applied per client IP.
func NewRouter(handlers *Handlers, opts RouterOptions, log *slog.Logger) *chi.Mux {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	limit := opts.RequestsPerMinute
	if limit <= 0 {
		limit = defaultRequestsPerMinute
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(httprate.Limit(limit, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusTooManyRequests, "Too many requests")
		}),
	))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", HealthHandlerFunc(opts.Checks, log))

		r.Get("/crowd-data", handlers.GetCrowdData)
		r.Post("/crowd-data", handlers.PostCrowdData)

		r.Get("/recommendations", handlers.GetRecommendations)
		r.Post("/recommendations", handlers.PostRecommendations)

		r.Get("/live-crowds", handlers.GetLiveCrowds)
		r.Post("/live-crowds", handlers.PostLiveCrowds)

		r.Get("/live-analytics", handlers.GetLiveAnalytics)
		r.Post("/live-analytics", handlers.PostLiveAnalytics)

		r.Get("/search", handlers.GetSearch)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
