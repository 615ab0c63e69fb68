package handlers

import (
	"net/url"
	"strconv"

	"launchdash/internal/config"
	"launchdash/internal/dataset"
	"launchdash/internal/middleware"
	"launchdash/internal/models"
)

// SiteOptions returns the dropdown entries: "ALL" first, then every
// distinct site in the dataset with its configured label.
func SiteOptions(ds *dataset.Dataset, dash *config.DashboardConfig) []models.SiteOption {
	sites := ds.Sites()
	options := make([]models.SiteOption, 0, len(sites)+1)
	options = append(options, models.SiteOption{Name: models.AllSites, Label: "All Sites"})
	for _, site := range sites {
		options = append(options, models.SiteOption{Name: site, Label: dash.SiteLabel(site)})
	}
	return options
}

// selectionQuery encodes a selection back into the query string the chart
// image routes understand.
func selectionQuery(sel middleware.Selection) string {
	v := url.Values{}
	v.Set("site", sel.Site)
	v.Set("low", strconv.FormatFloat(sel.Range.Low, 'f', -1, 64))
	v.Set("high", strconv.FormatFloat(sel.Range.High, 'f', -1, 64))
	return v.Encode()
}
