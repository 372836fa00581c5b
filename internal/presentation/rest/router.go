package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/GopalChinta/Online-Fraud-Detection/internal/presentation/rest/middleware"
)

// RouterConfig holds the handlers and settings mounted by NewRouter.
type RouterConfig struct {
	Detection *DetectionHandler
	Health    *HealthHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
	Logger  *slog.Logger
	// RateLimit is the allowed requests per second on the API routes; 0
	// disables limiting.
	RateLimit int
}

// NewRouter creates the chi router with all routes mounted.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Middleware.
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.LoggingMiddleware(cfg.Logger))

	cfg.Health.RegisterRoutes(r)
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimitMiddleware(limiter))
		r.Use(chimw.SetHeader("Content-Type", "application/json"))

		r.Post("/detect", cfg.Detection.Detect)
		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/detect", cfg.Detection.Detect)
			r.Get("/benchmarks", cfg.Detection.Benchmarks)
		})
	})

	return r
}
