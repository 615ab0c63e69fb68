package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Payload slider defaults, in kg.
const (
	DefaultSliderMin  = 0
	DefaultSliderMax  = 10000
	DefaultSliderStep = 1000
)

// defaultSliderMarks are labelled ticks on the default 0-10000 kg slider.
var defaultSliderMarks = []float64{0, 2500, 5000, 7500, 10000}

// ErrInvalidSlider is returned when the payload slider settings are unusable.
var ErrInvalidSlider = errors.New("invalid payload slider config")

// DashboardConfig represents the structure of the dashboard YAML file.
// Presentation settings that are awkward to express as env vars.
type DashboardConfig struct {
	Sites         []SiteConfig `yaml:"sites"`
	PayloadSlider SliderConfig `yaml:"payload_slider"`
}

// SiteConfig attaches a display label to a launch site.
type SiteConfig struct {
	Name  string `yaml:"name"`  // Must match the CSV "Launch Site" value
	Label string `yaml:"label"` // Shown in the dropdown
}

// SliderConfig defines the payload range control.
type SliderConfig struct {
	Min   float64   `yaml:"min"`
	Max   float64   `yaml:"max"`
	Step  float64   `yaml:"step"`
	Marks []float64 `yaml:"marks,omitempty"`
}

// DefaultDashboardConfig returns the built-in dashboard settings.
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		PayloadSlider: SliderConfig{
			Min:   DefaultSliderMin,
			Max:   DefaultSliderMax,
			Step:  DefaultSliderStep,
			Marks: slices.Clone(defaultSliderMarks),
		},
	}
}

// LoadDashboardConfig loads the dashboard YAML file at path.
// Returns the defaults without error if the file doesn't exist.
func LoadDashboardConfig(path string) (*DashboardConfig, error) {
	cfg := DefaultDashboardConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return cfg, nil
		}
		return nil, fmt.Errorf("dashboard config: read %q: %w", path, err)
	}

	// Marks left out of the file are filled in after decoding, so they can
	// follow a narrowed min/max.
	cfg.PayloadSlider.Marks = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("dashboard config: parse %q: %w", path, err)
	}
	if cfg.PayloadSlider.Marks == nil {
		cfg.PayloadSlider.Marks = marksWithin(defaultSliderMarks, cfg.PayloadSlider.Min, cfg.PayloadSlider.Max)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("dashboard config: %q: %w", path, err)
	}

	return cfg, nil
}

// marksWithin returns the marks inside [lo, hi].
func marksWithin(marks []float64, lo, hi float64) []float64 {
	out := make([]float64, 0, len(marks))
	for _, m := range marks {
		if m >= lo && m <= hi {
			out = append(out, m)
		}
	}
	return out
}

// Validate checks the slider settings and sorts its marks.
func (c *DashboardConfig) Validate() error {
	s := &c.PayloadSlider
	if s.Min >= s.Max {
		return fmt.Errorf("%w: min %v must be below max %v", ErrInvalidSlider, s.Min, s.Max)
	}
	if s.Step <= 0 {
		return fmt.Errorf("%w: step must be positive", ErrInvalidSlider)
	}
	for _, m := range s.Marks {
		if m < s.Min || m > s.Max {
			return fmt.Errorf("%w: mark %v outside [%v, %v]", ErrInvalidSlider, m, s.Min, s.Max)
		}
	}
	slices.Sort(s.Marks)
	return nil
}

// SiteLabel returns the configured label for a site, or the site name itself.
func (c *DashboardConfig) SiteLabel(name string) string {
	if c == nil {
		return name
	}
	for _, s := range c.Sites {
		if s.Name == name && s.Label != "" {
			return s.Label
		}
	}
	return name
}
