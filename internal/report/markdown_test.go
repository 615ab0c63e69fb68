package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/analytics"
	"launchdash/internal/models"
	"launchdash/internal/testutil"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func render(t *testing.T, opts Options) string {
	t.Helper()

	var buf bytes.Buffer
	opts.Now = fixedNow
	require.NoError(t, NewMarkdownWriter(&buf).Write(testutil.Dataset(t), opts))
	return buf.String()
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("all sites", func(t *testing.T) {
		t.Parallel()

		output := render(t, Options{Range: analytics.DefaultPayloadRange()})

		assert.Contains(t, output, "# SpaceX Launch Records")
		assert.Contains(t, output, "## Successful Launches by Site")
		assert.Contains(t, output, "## Correlation between Payload Mass and Mission Outcome for All Sites")
		assert.Contains(t, output, "```mermaid")
		assert.Contains(t, output, "KSC LC-39A")
		assert.Contains(t, output, "**17**")
		assert.Contains(t, output, "2026-01-02 03:04:05 UTC")
	})

	t.Run("one site", func(t *testing.T) {
		t.Parallel()

		output := render(t, Options{
			Site:  "KSC LC-39A",
			Range: analytics.PayloadRange{Low: 2000, High: 5000},
			Title: "KSC Report",
		})

		assert.Contains(t, output, "# KSC Report")
		assert.Contains(t, output, "## Success vs Failure Counts for KSC LC-39A")
		assert.Contains(t, output, "**13**")
		assert.Contains(t, output, "2000 - 5000")
		assert.NotContains(t, output, "VAFB SLC-4E")
	})

	t.Run("unknown site", func(t *testing.T) {
		t.Parallel()

		output := render(t, Options{Site: "Nowhere", Range: analytics.DefaultPayloadRange()})

		assert.Contains(t, output, "No launches recorded for Nowhere.")
		assert.NotContains(t, output, "```mermaid")
	})

	t.Run("inverted range", func(t *testing.T) {
		t.Parallel()

		output := render(t, Options{Range: analytics.PayloadRange{Low: 5000, High: 2000}})

		assert.Contains(t, output, "No launches with payload mass between 5000 and 2000 kg.")
	})
}

func TestMarkdownWriter_RecordsTable(t *testing.T) {
	t.Parallel()

	output := render(t, Options{Site: models.AllSites, Range: analytics.PayloadRange{Low: 2000, High: 5000}})

	// one table row per matching launch
	start := strings.Index(output, "## Correlation")
	require.GreaterOrEqual(t, start, 0)
	rows := 0
	for _, line := range strings.Split(output[start:], "\n") {
		if strings.Contains(line, "LC-") {
			rows++
		}
	}
	assert.Equal(t, 13, rows)
}
