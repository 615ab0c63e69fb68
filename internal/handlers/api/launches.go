package api

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/analytics"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/handlers"
	"launchdash/internal/metrics"
	"launchdash/internal/middleware"
	"launchdash/internal/models"
)

// LaunchHandler exposes the chart data as JSON.
type LaunchHandler struct {
	ds   *dataset.Dataset
	dash *config.DashboardConfig
}

// NewLaunchHandler creates a new API launch handler.
func NewLaunchHandler(ds *dataset.Dataset, dash *config.DashboardConfig) *LaunchHandler {
	return &LaunchHandler{ds: ds, dash: dash}
}

// Sites returns the dropdown options, "ALL" first.
func (h *LaunchHandler) Sites(c fiber.Ctx) error {
	return jsonSuccess(c, models.SitesResponse{Sites: handlers.SiteOptions(h.ds, h.dash)})
}

// Bounds returns the payload bounds of the loaded records and the range
// control settings.
func (h *LaunchHandler) Bounds(c fiber.Ctx) error {
	slider := h.dash.PayloadSlider
	marks := slider.Marks
	if marks == nil {
		marks = []float64{}
	}
	return jsonSuccess(c, models.BoundsResponse{
		Payload: h.ds.PayloadBounds(),
		Slider: models.SliderResponse{
			Min:   slider.Min,
			Max:   slider.Max,
			Step:  slider.Step,
			Marks: marks,
		},
		Records: h.ds.Len(),
	})
}

// Pie returns the success pie for the site selector.
func (h *LaunchHandler) Pie(c fiber.Ctx) error {
	sel := middleware.SelectionFrom(c)
	metrics.RecordChartRequest(metrics.ChartPie, sel.Site)
	return jsonSuccess(c, analytics.Pie(h.ds.Records(), sel.Site))
}

// Scatter returns the records within the payload range for the site
// selector, each annotated with its outcome label.
func (h *LaunchHandler) Scatter(c fiber.Ctx) error {
	sel := middleware.SelectionFrom(c)
	metrics.RecordChartRequest(metrics.ChartScatter, sel.Site)
	return jsonSuccess(c, analytics.Scatter(h.ds.Records(), sel.Range, sel.Site))
}
