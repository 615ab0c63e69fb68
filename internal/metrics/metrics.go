package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"launchdash/internal/analytics"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// Chart names used as the "chart" label.
const (
	ChartPie     = "pie"
	ChartScatter = "scatter"
)

var (
	launchRecordsDesc = prometheus.NewDesc(
		"launchdash_launch_records",
		"Loaded launch records by site and outcome",
		[]string{"site", "outcome"},
		nil,
	)
	payloadBoundDesc = prometheus.NewDesc(
		"launchdash_payload_mass_kg",
		"Minimum and maximum payload mass across loaded records",
		[]string{"bound"},
		nil,
	)

	chartRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_chart_requests_total",
			Help: "Chart computations by chart and site scope",
		},
		[]string{"chart", "scope"},
	)
)

// DatasetCollector is a custom Prometheus collector that reports the loaded
// dataset's shape on each scrape.
type DatasetCollector struct {
	ds *dataset.Dataset
}

// NewDatasetCollector creates a collector over ds.
func NewDatasetCollector(ds *dataset.Dataset) *DatasetCollector {
	return &DatasetCollector{ds: ds}
}

// Describe sends the metric descriptors to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- launchRecordsDesc
	ch <- payloadBoundDesc
}

// Collect emits per-site outcome counts and the payload bounds.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	records := c.ds.Records()
	for _, site := range c.ds.Sites() {
		outcome := analytics.OutcomeForSite(records, site)
		ch <- prometheus.MustNewConstMetric(launchRecordsDesc, prometheus.GaugeValue,
			float64(outcome.Successes), site, "success")
		ch <- prometheus.MustNewConstMetric(launchRecordsDesc, prometheus.GaugeValue,
			float64(outcome.Failures), site, "failure")
	}

	bounds := c.ds.PayloadBounds()
	ch <- prometheus.MustNewConstMetric(payloadBoundDesc, prometheus.GaugeValue, bounds.Min, "min")
	ch <- prometheus.MustNewConstMetric(payloadBoundDesc, prometheus.GaugeValue, bounds.Max, "max")
}

var initOnce sync.Once

// Init registers the dataset collector and request counters.
// Must be called once at startup.
func Init(ds *dataset.Dataset) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewDatasetCollector(ds), chartRequests)
	})
}

// RecordChartRequest counts one chart computation. scope is "all" for the
// all-sites selector and "site" otherwise, keeping label cardinality fixed.
func RecordChartRequest(chart, site string) {
	scope := "site"
	if models.IsAllSites(site) {
		scope = "all"
	}
	chartRequests.WithLabelValues(chart, scope).Inc()
}
