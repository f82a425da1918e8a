package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nalin-pixel/cliqo-receptionist/internal/demo"
	"github.com/nalin-pixel/cliqo-receptionist/internal/health"
	httpmiddleware "github.com/nalin-pixel/cliqo-receptionist/internal/http/middleware"
	"github.com/nalin-pixel/cliqo-receptionist/pkg/logging"
)

// Config holds router dependencies.
type Config struct {
	Logger             *logging.Logger
	DemoHandler        *demo.Handler
	HealthHandler      *health.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates the chi router with every route mounted.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	health.RegisterRoutes(r, cfg.HealthHandler)
	demo.RegisterRoutes(r, cfg.DemoHandler)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
