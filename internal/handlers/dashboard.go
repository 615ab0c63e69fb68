package handlers

import (
	"html/template"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/analytics"
	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/middleware"
	"launchdash/internal/models"
)

// DashboardHandler serves the dashboard page and its chart partial.
type DashboardHandler struct {
	ds   *dataset.Dataset
	cfg  *config.Config
	dash *config.DashboardConfig
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(ds *dataset.Dataset, cfg *config.Config, dash *config.DashboardConfig) *DashboardHandler {
	return &DashboardHandler{ds: ds, cfg: cfg, dash: dash}
}

// Index renders the dashboard with the site dropdown, the payload range
// control and the initial charts.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	sel := middleware.SelectionFrom(c)

	// First visit: the range control starts at the dataset's payload bounds.
	if c.Query("low") == "" && c.Query("high") == "" {
		bounds := h.ds.PayloadBounds()
		sel.Range = analytics.PayloadRange{Low: bounds.Min, High: bounds.Max}
	}

	return c.Render("index", MergeBranding(fiber.Map{
		"Title":     "Launch Records",
		"Sites":     SiteOptions(h.ds, h.dash),
		"Selection": sel,
		"Slider":    h.dash.PayloadSlider,
		"Charts":    h.chartsData(sel),
	}, h.cfg))
}

// Charts renders the chart partial swapped in by htmx when a control changes.
func (h *DashboardHandler) Charts(c fiber.Ctx) error {
	return c.Render("partials/charts", h.chartsData(middleware.SelectionFrom(c)), "")
}

func (h *DashboardHandler) chartsData(sel middleware.Selection) fiber.Map {
	records := h.ds.Records()
	query := selectionQuery(sel)
	return fiber.Map{
		"AllSites":   models.IsAllSites(sel.Site),
		"PieURL":     template.URL("/charts/pie.svg?" + query),
		"ScatterURL": template.URL("/charts/scatter.svg?" + query),
		"Pie":        analytics.Pie(records, sel.Site),
		"Scatter":    analytics.Scatter(records, sel.Range, sel.Site),
	}
}
