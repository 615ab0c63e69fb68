// Package charts renders the dashboard's pie and scatter charts as SVG or
// PNG images.
package charts

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"launchdash/internal/models"
)

// Format is an image output format.
type Format string

// Supported formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Default image size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 420
)

// ErrUnsupportedFormat is returned for formats other than svg and png.
var ErrUnsupportedFormat = errors.New("unsupported chart format")

// Options controls image dimensions.
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// ParseFormat maps a format name to a Format. Empty selects SVG.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatSVG:
		return FormatSVG, nil
	case FormatPNG:
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) renderer() chart.RendererProvider {
	if f == FormatPNG {
		return chart.PNG
	}
	return chart.SVG
}

// noDataColor fills the placeholder slice when a pie has nothing to show.
var noDataColor = drawing.ColorFromHex("d9d9d9")

// RenderPie draws a pie chart. Zero-valued slices are left out; a pie
// with no positive slices is drawn as a single grey "No data" slice.
func RenderPie(w io.Writer, pie models.PieChart, format Format, opts Options) error {
	width, height := opts.size()

	var values []chart.Value
	for _, s := range pie.Slices {
		if s.Value <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(s.Value),
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Value),
		})
	}
	if len(values) == 0 {
		values = []chart.Value{{
			Value: 1,
			Label: "No data",
			Style: chart.Style{FillColor: noDataColor, StrokeColor: noDataColor},
		}}
	}

	pc := chart.PieChart{
		Title:  pie.Title,
		Width:  width,
		Height: height,
		Values: values,
	}

	if err := pc.Render(format.renderer(), w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

// pointStyle returns a style that renders points only (no connecting line)
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
	}
}

// RenderScatter draws payload mass (x) against outcome (y) with one series
// per booster category. The x axis spans the requested range so the chart
// keeps its scale when the filter leaves few or no points.
func RenderScatter(w io.Writer, sc models.ScatterChart, format Format, opts Options) error {
	width, height := opts.size()
	xMin, xMax := axisBounds(sc.Low, sc.High)

	var series []chart.Series
	for i, category := range sc.Categories() {
		var xs, ys []float64
		for _, p := range sc.Points {
			if p.BoosterCategory == category {
				xs = append(xs, p.PayloadMassKg)
				ys = append(ys, float64(p.Class))
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}

	hasPoints := len(series) > 0
	if !hasPoints {
		// go-chart needs at least one visible series to lay out the axes.
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{xMin, xMax},
			YValues: []float64{0, 1},
			Style:   chart.Style{StrokeWidth: chart.Disabled},
		})
	}

	ch := chart.Chart{
		Title:      sc.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "Mission Outcome",
			Range: &chart.ContinuousRange{Min: -0.25, Max: 1.25},
			Ticks: []chart.Tick{
				{Value: models.OutcomeFailure, Label: models.LabelFailure},
				{Value: models.OutcomeSuccess, Label: models.LabelSuccess},
			},
		},
		Series: series,
	}
	if hasPoints {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	if err := ch.Render(format.renderer(), w); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}
	return nil
}

// axisBounds widens a degenerate or inverted range so the axis has a
// non-zero span.
func axisBounds(low, high float64) (float64, float64) {
	if low > high {
		low, high = high, low
	}
	if high-low < 1 {
		low -= 500
		high += 500
	}
	return low, high
}
