package models

// SiteCount holds the number of successful launches for one site.
type SiteCount struct {
	Site      string `json:"site"`
	Successes int    `json:"successes"`
}

// SiteOutcome holds success and failure counts for one site.
type SiteOutcome struct {
	Site      string `json:"site"`
	Successes int    `json:"successes"`
	Failures  int    `json:"failures"`
}

// Total returns the number of records counted for the site.
func (o SiteOutcome) Total() int {
	return o.Successes + o.Failures
}

// PayloadBounds is the min/max payload mass across the loaded records.
type PayloadBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PieSlice is one labelled value of a pie chart.
type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PieChart is the data behind the success pie chart.
type PieChart struct {
	Title  string     `json:"title"`
	Site   string     `json:"site"`
	Slices []PieSlice `json:"slices"`
}

// Total returns the sum of all slice values.
func (p PieChart) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Value
	}
	return total
}

// ScatterPoint is one launch plotted as payload mass against outcome.
type ScatterPoint struct {
	FlightNumber    int     `json:"flight_number,omitempty"`
	Site            string  `json:"site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Class           int     `json:"class"`
	Outcome         string  `json:"outcome"`
	BoosterCategory string  `json:"booster_category"`
}

// ScatterChart is the data behind the payload/outcome scatter chart.
type ScatterChart struct {
	Title  string         `json:"title"`
	Site   string         `json:"site"`
	Low    float64        `json:"low"`
	High   float64        `json:"high"`
	Points []ScatterPoint `json:"points"`
}

// Categories returns the distinct booster categories in first-seen order.
func (s ScatterChart) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range s.Points {
		if !seen[p.BoosterCategory] {
			seen[p.BoosterCategory] = true
			categories = append(categories, p.BoosterCategory)
		}
	}
	return categories
}
