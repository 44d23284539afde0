package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/threatlens/frontend"
	"github.com/secmon-lab/threatlens/pkg/domain/interfaces"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	dashboardUC interfaces.Dashboard,
	renderer interfaces.ChartRenderer,
) (*Server, error) {
	router := NewRouter(ctx, dashboardUC, renderer, frontend.GetHTTPFS)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// NewRouter builds the route table. assets supplies the dashboard page; if it
// fails a minimal fallback page is served instead.
func NewRouter(
	ctx context.Context,
	dashboardUC interfaces.Dashboard,
	renderer interfaces.ChartRenderer,
	assets func() (http.FileSystem, error),
) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	dashboardHandler := NewDashboardHandler(dashboardUC, renderer)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Use(CORS)
		r.Get("/options", dashboardHandler.HandleOptions)
		r.Get("/dashboard", dashboardHandler.HandleDashboard)
		r.Get("/charts/{tab}.png", dashboardHandler.HandleChartPNG)
	})

	fs, err := assets()
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
			"error", err,
		)
		router.Get("/*", handleFallbackHome)
		return router
	}

	spa, err := NewSPAHandler(fs)
	if err != nil {
		ctxlog.From(ctx).Warn("Failed to create SPA handler, using fallback",
			"error", err,
		)
		router.Get("/*", handleFallbackHome)
		return router
	}

	ctxlog.From(ctx).Info("Serving frontend from embedded files")
	router.Handle("/*", spa)
	return router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "threatlens",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// handleFallbackHome handles the root path when frontend is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Global Cybersecurity Threats Explorer</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif; margin: 2rem; }
        img { display: block; max-width: 100%; margin-bottom: 2rem; }
    </style>
</head>
<body>
    <h1>Global Cybersecurity Threats Explorer</h1>
    <img src="/api/charts/by-country.png" alt="By Country">
    <img src="/api/charts/by-attack-type.png" alt="By Attack Type">
    <img src="/api/charts/industry-country.png" alt="Industry/Country">
    <img src="/api/charts/resolution-heatmap.png" alt="Resolution Heatmap">
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}
