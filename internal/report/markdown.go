// Package report writes an offline Markdown summary of the launch records,
// the same two views the dashboard shows.
package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"launchdash/internal/analytics"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// Options selects the site and payload range the report covers.
type Options struct {
	Site  string
	Range analytics.PayloadRange
	Title string
	Now   func() time.Time
}

// MarkdownWriter outputs launch reports in Markdown format.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders the report for ds and opts.
func (w *MarkdownWriter) Write(ds *dataset.Dataset, opts Options) error {
	if opts.Site == "" {
		opts.Site = models.AllSites
	}
	if opts.Title == "" {
		opts.Title = "SpaceX Launch Records"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	records := ds.Records()
	pie := analytics.Pie(records, opts.Site)
	scatter := analytics.Scatter(records, opts.Range, opts.Site)

	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, ds, opts)
	w.writePie(md, pie)
	w.writeScatter(md, scatter)
	w.writeFooter(md, opts)

	return md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, ds *dataset.Dataset, opts Options) {
	bounds := ds.PayloadBounds()

	md.H1(opts.Title)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + ds.Source() + "`"},
			{"Records", strconv.Itoa(ds.Len())},
			{"Sites", strconv.Itoa(len(ds.Sites()))},
			{"Payload Mass (kg)", formatMass(bounds.Min) + " - " + formatMass(bounds.Max)},
			{"Selected Site", siteName(opts.Site)},
			{"Selected Range (kg)", formatMass(opts.Range.Low) + " - " + formatMass(opts.Range.High)},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writePie(md *markdown.Markdown, pie models.PieChart) {
	md.H2(pie.Title)
	md.PlainText("")

	if pie.Total() == 0 {
		md.Note("No launches recorded for " + siteName(pie.Site) + ".")
		md.PlainText("")
		return
	}

	label := "Outcome"
	if models.IsAllSites(pie.Site) {
		label = "Site"
	}

	rows := make([][]string, 0, len(pie.Slices)+1)
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(pie.Title),
		piechart.WithShowData(true),
	)
	for _, s := range pie.Slices {
		rows = append(rows, []string{s.Label, strconv.Itoa(s.Value)})
		if s.Value > 0 {
			chart.LabelAndIntValue(s.Label, uint64(s.Value))
		}
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(pie.Total()) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{label, "Launches"},
		Rows:   rows,
	})
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeScatter(md *markdown.Markdown, sc models.ScatterChart) {
	md.H2(sc.Title)
	md.PlainText("")

	if len(sc.Points) == 0 {
		md.Note("No launches with payload mass between " + formatMass(sc.Low) + " and " + formatMass(sc.High) + " kg.")
		md.PlainText("")
		return
	}

	// Outcome counts per booster category, in the order categories are plotted.
	type tally struct{ success, failure int }
	tallies := make(map[string]*tally)
	for _, p := range sc.Points {
		t, ok := tallies[p.BoosterCategory]
		if !ok {
			t = &tally{}
			tallies[p.BoosterCategory] = t
		}
		if p.Class == models.OutcomeSuccess {
			t.success++
		} else {
			t.failure++
		}
	}

	categoryRows := make([][]string, 0, len(tallies))
	for _, category := range sc.Categories() {
		t := tallies[category]
		categoryRows = append(categoryRows, []string{category, strconv.Itoa(t.success), strconv.Itoa(t.failure)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Booster Version Category", models.LabelSuccess, models.LabelFailure},
		Rows:   categoryRows,
	})
	md.PlainText("")

	rows := make([][]string, len(sc.Points))
	for i, p := range sc.Points {
		flight := "-"
		if p.FlightNumber > 0 {
			flight = strconv.Itoa(p.FlightNumber)
		}
		rows[i] = []string{flight, p.Site, formatMass(p.PayloadMassKg), p.Outcome, p.BoosterCategory}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Flight", "Launch Site", "Payload Mass (kg)", "Outcome", "Booster Version Category"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, opts Options) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by launchdash on %s*", opts.Now().UTC().Format("2006-01-02 15:04:05 MST"))
}

func siteName(site string) string {
	if models.IsAllSites(site) {
		return "All Sites"
	}
	return site
}

func formatMass(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}
