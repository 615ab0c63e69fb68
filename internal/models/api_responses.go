package models

// SiteOption is one entry of the site dropdown.
type SiteOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// SitesResponse lists the dropdown options, "ALL" first.
type SitesResponse struct {
	Sites []SiteOption `json:"sites"`
}

// SliderResponse describes the payload range control.
type SliderResponse struct {
	Min   float64   `json:"min"`
	Max   float64   `json:"max"`
	Step  float64   `json:"step"`
	Marks []float64 `json:"marks"`
}

// BoundsResponse contains the dataset payload bounds and the slider settings
// seeded from them.
type BoundsResponse struct {
	Payload PayloadBounds  `json:"payload"`
	Slider  SliderResponse `json:"slider"`
	Records int            `json:"records"`
}
