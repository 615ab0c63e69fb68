// Package analytics implements the dashboard's two views over the launch
// table: success counts by site and the payload range filter.
package analytics

import (
	"cmp"
	"slices"

	"launchdash/internal/models"
)

// Pie chart titles.
const (
	PieTitleAllSites = "Successful Launches by Site"
	pieTitleSite     = "Success vs Failure Counts for "
)

// SuccessBySite counts successful launches per site. Only sites with at
// least one success are returned, ordered by count descending, then name.
func SuccessBySite(records []models.LaunchRecord) []models.SiteCount {
	counts := make(map[string]int)
	for _, r := range records {
		if r.Succeeded() {
			counts[r.Site]++
		}
	}

	result := make([]models.SiteCount, 0, len(counts))
	for site, n := range counts {
		result = append(result, models.SiteCount{Site: site, Successes: n})
	}
	slices.SortFunc(result, func(a, b models.SiteCount) int {
		if c := cmp.Compare(b.Successes, a.Successes); c != 0 {
			return c
		}
		return cmp.Compare(a.Site, b.Site)
	})
	return result
}

// OutcomeForSite counts successes and failures for one site. A site with
// no records yields zero counts.
func OutcomeForSite(records []models.LaunchRecord, site string) models.SiteOutcome {
	out := models.SiteOutcome{Site: site}
	total := 0
	for _, r := range records {
		if r.Site != site {
			continue
		}
		total++
		if r.Succeeded() {
			out.Successes++
		}
	}
	out.Failures = total - out.Successes
	return out
}

// Pie builds the success pie chart for a site selector: success share per
// site for models.AllSites, otherwise success vs failure for that site.
func Pie(records []models.LaunchRecord, site string) models.PieChart {
	if models.IsAllSites(site) {
		counts := SuccessBySite(records)
		pieSlices := make([]models.PieSlice, 0, len(counts))
		for _, c := range counts {
			pieSlices = append(pieSlices, models.PieSlice{Label: c.Site, Value: c.Successes})
		}
		return models.PieChart{Title: PieTitleAllSites, Site: site, Slices: pieSlices}
	}

	outcome := OutcomeForSite(records, site)
	return models.PieChart{
		Title: pieTitleSite + site,
		Site:  site,
		Slices: []models.PieSlice{
			{Label: models.LabelSuccess, Value: outcome.Successes},
			{Label: models.LabelFailure, Value: outcome.Failures},
		},
	}
}
