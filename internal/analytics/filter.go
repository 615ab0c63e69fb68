package analytics

import (
	"launchdash/internal/models"
)

// Default payload range used when none is supplied, in kg.
const (
	DefaultPayloadLow  = 0
	DefaultPayloadHigh = 10000
)

const scatterTitlePrefix = "Correlation between Payload Mass and Mission Outcome for "

// PayloadRange is a closed payload mass interval in kg.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// DefaultPayloadRange returns [0, 10000].
func DefaultPayloadRange() PayloadRange {
	return PayloadRange{Low: DefaultPayloadLow, High: DefaultPayloadHigh}
}

// Contains reports whether mass lies within the closed interval.
func (r PayloadRange) Contains(mass float64) bool {
	return mass >= r.Low && mass <= r.High
}

// Empty reports whether no mass can satisfy the range (low > high).
func (r PayloadRange) Empty() bool {
	return r.Low > r.High
}

// FilterByPayload returns the records whose payload mass is within rng and,
// unless site is models.AllSites, that launched from site. Records are
// returned unmodified in their original order.
func FilterByPayload(records []models.LaunchRecord, rng PayloadRange, site string) []models.LaunchRecord {
	result := []models.LaunchRecord{}
	if rng.Empty() {
		return result
	}

	allSites := models.IsAllSites(site)
	for _, r := range records {
		if !rng.Contains(r.PayloadMassKg) {
			continue
		}
		if !allSites && r.Site != site {
			continue
		}
		result = append(result, r)
	}
	return result
}

// Scatter builds the payload vs outcome scatter chart for a range and site.
func Scatter(records []models.LaunchRecord, rng PayloadRange, site string) models.ScatterChart {
	filtered := FilterByPayload(records, rng, site)

	points := make([]models.ScatterPoint, 0, len(filtered))
	for _, r := range filtered {
		points = append(points, models.ScatterPoint{
			FlightNumber:    r.FlightNumber,
			Site:            r.Site,
			PayloadMassKg:   r.PayloadMassKg,
			Class:           r.Class,
			Outcome:         r.OutcomeLabel(),
			BoosterCategory: r.BoosterCategory,
		})
	}

	return models.ScatterChart{
		Title:  ScatterTitle(site),
		Site:   site,
		Low:    rng.Low,
		High:   rng.High,
		Points: points,
	}
}

// ScatterTitle returns the scatter chart title for a site selector.
func ScatterTitle(site string) string {
	if models.IsAllSites(site) {
		return scatterTitlePrefix + "All Sites"
	}
	return scatterTitlePrefix + site
}
