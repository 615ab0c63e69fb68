package models

// Outcome classes as stored in the source CSV "class" column.
const (
	OutcomeFailure = 0
	OutcomeSuccess = 1
)

// Outcome labels used on chart axes and legends.
const (
	LabelFailure = "Failure"
	LabelSuccess = "Success"
)

// AllSites is the site selector value meaning "no site filter".
const AllSites = "ALL"

// LaunchRecord represents one row of historical launch data.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number,omitempty"`
	Site            string  `json:"site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Class           int     `json:"class"`                     // 0 = failure, 1 = success
	BoosterVersion  string  `json:"booster_version,omitempty"` // Optional column
	BoosterCategory string  `json:"booster_category"`
}

// Succeeded returns true if the launch outcome is a success.
func (r LaunchRecord) Succeeded() bool {
	return r.Class == OutcomeSuccess
}

// OutcomeLabel returns the display label for the record's outcome.
func (r LaunchRecord) OutcomeLabel() string {
	return OutcomeLabel(r.Class)
}

// OutcomeLabel maps an outcome class to its display label.
func OutcomeLabel(class int) string {
	if class == OutcomeSuccess {
		return LabelSuccess
	}
	return LabelFailure
}

// IsAllSites returns true if the selector means every site.
func IsAllSites(site string) bool {
	return site == AllSites
}
