package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchdash/internal/analytics"
	"launchdash/internal/models"
)

func selectionApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/", mw, func(c fiber.Ctx) error {
		return c.JSON(SelectionFrom(c))
	})
	return app
}

func TestRequireSelection(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		want       Selection
	}{
		{
			name:       "defaults",
			query:      "",
			wantStatus: fiber.StatusOK,
			want:       Selection{Site: models.AllSites, Range: analytics.DefaultPayloadRange()},
		},
		{
			name:       "site and range",
			query:      "?site=KSC+LC-39A&low=2000&high=5000",
			wantStatus: fiber.StatusOK,
			want:       Selection{Site: "KSC LC-39A", Range: analytics.PayloadRange{Low: 2000, High: 5000}},
		},
		{
			name:       "bad range falls back",
			query:      "?site=ALL&low=x&high=5000",
			wantStatus: fiber.StatusOK,
			want:       Selection{Site: models.AllSites, Range: analytics.DefaultPayloadRange()},
		},
		{
			name:       "control characters rejected",
			query:      "?site=KSC%00",
			wantStatus: fiber.StatusBadRequest,
		},
	}

	app := selectionApp(RequireSelection)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			if tt.wantStatus != fiber.StatusOK {
				assert.Contains(t, string(body), `"status":"error"`)
				return
			}
			var got Selection
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalSelection_FallsBackToAllSites(t *testing.T) {
	app := selectionApp(OptionalSelection)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?site=KSC%00&low=1000", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got Selection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, Selection{Site: models.AllSites, Range: analytics.PayloadRange{Low: 1000, High: 10000}}, got)
}

func TestSelectionFrom_WithoutMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(SelectionFrom(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	var got Selection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, models.AllSites, got.Site)
	assert.Equal(t, analytics.DefaultPayloadRange(), got.Range)
}
