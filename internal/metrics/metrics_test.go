package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/models"
	fixtures "launchdash/internal/testutil"
)

func TestDatasetCollector(t *testing.T) {
	ds := fixtures.Dataset(t)
	collector := NewDatasetCollector(ds)

	// two outcomes per site plus min and max payload
	assert.Equal(t, len(ds.Sites())*2+2, testutil.CollectAndCount(collector))

	expected := `
# HELP launchdash_payload_mass_kg Minimum and maximum payload mass across loaded records
# TYPE launchdash_payload_mass_kg gauge
launchdash_payload_mass_kg{bound="max"} 9600
launchdash_payload_mass_kg{bound="min"} 0
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "launchdash_payload_mass_kg"))

	records := `
# HELP launchdash_launch_records Loaded launch records by site and outcome
# TYPE launchdash_launch_records gauge
launchdash_launch_records{outcome="failure",site="CCAFS LC-40"} 6
launchdash_launch_records{outcome="failure",site="CCAFS SLC-40"} 2
launchdash_launch_records{outcome="failure",site="KSC LC-39A"} 3
launchdash_launch_records{outcome="failure",site="VAFB SLC-4E"} 2
launchdash_launch_records{outcome="success",site="CCAFS LC-40"} 2
launchdash_launch_records{outcome="success",site="CCAFS SLC-40"} 3
launchdash_launch_records{outcome="success",site="KSC LC-39A"} 10
launchdash_launch_records{outcome="success",site="VAFB SLC-4E"} 2
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(records), "launchdash_launch_records"))
}

func TestRecordChartRequest(t *testing.T) {
	allBefore := testutil.ToFloat64(chartRequests.WithLabelValues(ChartPie, "all"))
	siteBefore := testutil.ToFloat64(chartRequests.WithLabelValues(ChartScatter, "site"))

	RecordChartRequest(ChartPie, models.AllSites)
	RecordChartRequest(ChartScatter, "KSC LC-39A")
	RecordChartRequest(ChartScatter, "VAFB SLC-4E")

	assert.Equal(t, allBefore+1, testutil.ToFloat64(chartRequests.WithLabelValues(ChartPie, "all")))
	assert.Equal(t, siteBefore+2, testutil.ToFloat64(chartRequests.WithLabelValues(ChartScatter, "site")))
}

func TestInit_Idempotent(t *testing.T) {
	ds := fixtures.Dataset(t)

	assert.NotPanics(t, func() {
		Init(ds)
		Init(ds)
	})
}
