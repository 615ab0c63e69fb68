package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "DATA_FILE", "LOG_LEVEL", "RATE_LIMIT_MAX", "REDIS_URL", "TLS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, "data/spacex_launch_dash.csv", cfg.DataFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.False(t, cfg.TLSEnabled)
	assert.False(t, cfg.UsesRedisLimiter())
	assert.Equal(t, "SpaceX Launch Records Dashboard", cfg.SiteTitle)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("DATA_FILE", "/srv/launches.csv")
	t.Setenv("RATE_LIMIT_MAX", "250")
	t.Setenv("REDIS_URL", "redis://cache:6379/0")
	t.Setenv("TLS_ENABLED", "1")

	cfg := Load()

	assert.False(t, cfg.IsDev())
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "/srv/launches.csv", cfg.DataFile)
	assert.Equal(t, 250, cfg.RateLimitMax)
	assert.True(t, cfg.UsesRedisLimiter())
	assert.True(t, cfg.TLSEnabled)
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset", "", 7},
		{"valid", "42", 42},
		{"not a number", "many", 7},
		{"zero", "0", 7},
		{"negative", "-3", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LAUNCHDASH_TEST_INT", tt.value)
			assert.Equal(t, tt.want, getEnvInt("LAUNCHDASH_TEST_INT", 7))
		})
	}
}

func TestLoadDashboardConfig_MissingFile(t *testing.T) {
	cfg, err := LoadDashboardConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDashboardConfig(), cfg)
}

func TestLoadDashboardConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	content := `
sites:
  - name: KSC LC-39A
    label: Kennedy LC-39A
  - name: VAFB SLC-4E
payload_slider:
  min: 0
  max: 12000
  step: 500
  marks: [12000, 0, 6000]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadDashboardConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Kennedy LC-39A", cfg.SiteLabel("KSC LC-39A"))
	assert.Equal(t, "VAFB SLC-4E", cfg.SiteLabel("VAFB SLC-4E"))
	assert.Equal(t, "CCAFS LC-40", cfg.SiteLabel("CCAFS LC-40"))
	assert.Equal(t, SliderConfig{Min: 0, Max: 12000, Step: 500, Marks: []float64{0, 6000, 12000}}, cfg.PayloadSlider)
}

func TestLoadDashboardConfig_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sites:\n  - name: A\n    label: Alpha\n"), 0o600))

	cfg, err := LoadDashboardConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDashboardConfig().PayloadSlider, cfg.PayloadSlider)
	assert.Equal(t, "Alpha", cfg.SiteLabel("A"))
}

func TestLoadDashboardConfig_NarrowedSliderWithoutMarks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []float64
	}{
		{"narrowed max", "payload_slider:\n  min: 0\n  max: 5000\n  step: 500\n", []float64{0, 2500, 5000}},
		{"raised min", "payload_slider:\n  min: 3000\n  max: 10000\n  step: 1000\n", []float64{5000, 7500, 10000}},
		{"no default mark fits", "payload_slider:\n  min: 100\n  max: 200\n  step: 10\n", []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dashboard.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			cfg, err := LoadDashboardConfig(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.PayloadSlider.Marks)
		})
	}
}

func TestDefaultDashboardConfig_MarksNotShared(t *testing.T) {
	a := DefaultDashboardConfig()
	a.PayloadSlider.Marks[0] = 42

	assert.Equal(t, float64(0), DefaultDashboardConfig().PayloadSlider.Marks[0])
}

func TestLoadDashboardConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		slider  bool
	}{
		{"bad yaml", "sites: [", false},
		{"min above max", "payload_slider:\n  min: 5000\n  max: 100\n  step: 10\n", true},
		{"zero step", "payload_slider:\n  min: 0\n  max: 100\n  step: 0\n", true},
		{"mark out of range", "payload_slider:\n  min: 0\n  max: 100\n  step: 10\n  marks: [200]\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dashboard.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadDashboardConfig(path)
			require.Error(t, err)
			if tt.slider {
				assert.ErrorIs(t, err, ErrInvalidSlider)
			}
		})
	}
}

func TestSiteLabel_NilConfig(t *testing.T) {
	var cfg *DashboardConfig
	assert.Equal(t, "KSC LC-39A", cfg.SiteLabel("KSC LC-39A"))
}
