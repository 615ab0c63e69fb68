package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchdash/internal/charts"
	"launchdash/internal/dataset"
	"launchdash/internal/handlers"
	"launchdash/internal/handlers/api"
	"launchdash/internal/middleware"
)

// RegisterRoutes registers all application routes over the loaded dataset.
func (s *Server) RegisterRoutes(ds *dataset.Dataset) {
	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(ds, s.Cfg, s.Dash)
	chartHandler := handlers.NewChartHandler(ds, charts.Options{})
	probeHandler := handlers.NewProbeHandler(ds)
	launchAPI := api.NewLaunchHandler(ds, s.Dash)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Dashboard - malformed selectors fall back to all sites
	s.App.Get("/", middleware.OptionalSelection, dashboardHandler.Index)
	s.App.Get("/charts", middleware.OptionalSelection, dashboardHandler.Charts)
	s.App.Get("/charts/pie.svg", middleware.OptionalSelection, chartHandler.PieImage)
	s.App.Get("/charts/scatter.svg", middleware.OptionalSelection, chartHandler.ScatterImage)

	// JSON API - malformed selectors are rejected
	v1 := s.App.Group("/api/v1")
	v1.Get("/sites", launchAPI.Sites)
	v1.Get("/bounds", launchAPI.Bounds)
	v1.Get("/pie", middleware.RequireSelection, launchAPI.Pie)
	v1.Get("/scatter", middleware.RequireSelection, launchAPI.Scatter)
}
