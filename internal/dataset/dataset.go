package dataset

import (
	"slices"
	"time"

	"launchdash/internal/models"
)

// Dataset is the immutable in-memory table of launch records.
// It is safe for concurrent use because nothing mutates it after New.
type Dataset struct {
	records  []models.LaunchRecord
	sites    []string
	bounds   models.PayloadBounds
	source   string
	loadedAt time.Time
}

// New builds a Dataset from records, computing the distinct site list
// and the global payload bounds once.
func New(records []models.LaunchRecord, source string) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	d := &Dataset{
		records:  slices.Clone(records),
		source:   source,
		loadedAt: time.Now(),
	}

	seen := make(map[string]bool)
	d.bounds = models.PayloadBounds{Min: records[0].PayloadMassKg, Max: records[0].PayloadMassKg}
	for _, r := range d.records {
		if !seen[r.Site] {
			seen[r.Site] = true
			d.sites = append(d.sites, r.Site)
		}
		d.bounds.Min = min(d.bounds.Min, r.PayloadMassKg)
		d.bounds.Max = max(d.bounds.Max, r.PayloadMassKg)
	}
	slices.Sort(d.sites)

	return d, nil
}

// Records returns a copy of all launch records in file order.
func (d *Dataset) Records() []models.LaunchRecord {
	return slices.Clone(d.records)
}

// Len returns the number of loaded records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Sites returns the distinct launch sites, sorted.
func (d *Dataset) Sites() []string {
	return slices.Clone(d.sites)
}

// HasSite reports whether any record was launched from site.
func (d *Dataset) HasSite(site string) bool {
	_, found := slices.BinarySearch(d.sites, site)
	return found
}

// PayloadBounds returns the min and max payload mass across all records.
func (d *Dataset) PayloadBounds() models.PayloadBounds {
	return d.bounds
}

// Source returns the path or name the records were loaded from.
func (d *Dataset) Source() string {
	return d.source
}

// LoadedAt returns when the dataset was built.
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}
