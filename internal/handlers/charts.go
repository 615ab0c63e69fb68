package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/analytics"
	"launchdash/internal/charts"
	"launchdash/internal/dataset"
	"launchdash/internal/metrics"
	"launchdash/internal/middleware"
)

// ChartHandler renders chart images for the dashboard.
type ChartHandler struct {
	ds   *dataset.Dataset
	opts charts.Options
}

// NewChartHandler creates a new chart image handler.
func NewChartHandler(ds *dataset.Dataset, opts charts.Options) *ChartHandler {
	return &ChartHandler{ds: ds, opts: opts}
}

// PieImage renders the success pie for the selected site.
func (h *ChartHandler) PieImage(c fiber.Ctx) error {
	format, err := charts.ParseFormat(c.Query("format"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sel := middleware.SelectionFrom(c)
	metrics.RecordChartRequest(metrics.ChartPie, sel.Site)

	var buf bytes.Buffer
	if err := charts.RenderPie(&buf, analytics.Pie(h.ds.Records(), sel.Site), format, h.opts); err != nil {
		return err
	}
	return h.send(c, format, buf.Bytes())
}

// ScatterImage renders the payload/outcome scatter for the selection.
func (h *ChartHandler) ScatterImage(c fiber.Ctx) error {
	format, err := charts.ParseFormat(c.Query("format"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sel := middleware.SelectionFrom(c)
	metrics.RecordChartRequest(metrics.ChartScatter, sel.Site)

	var buf bytes.Buffer
	sc := analytics.Scatter(h.ds.Records(), sel.Range, sel.Site)
	if err := charts.RenderScatter(&buf, sc, format, h.opts); err != nil {
		return err
	}
	return h.send(c, format, buf.Bytes())
}

func (h *ChartHandler) send(c fiber.Ctx, format charts.Format, body []byte) error {
	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(body)
}
