package middleware

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/analytics"
	"launchdash/internal/models"
	"launchdash/internal/validation"
)

const selectionKey = "selection"

// Selection is the site and payload range chosen by the dashboard controls.
type Selection struct {
	Site  string
	Range analytics.PayloadRange
}

// RequireSelection parses the site, low and high query parameters and
// rejects malformed site selectors with a JSON 400.
func RequireSelection(c fiber.Ctx) error {
	site, err := validation.ParseSite(c.Query("site"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status": "error",
			"error":  err.Error(),
		})
	}

	c.Locals(selectionKey, Selection{
		Site:  site,
		Range: validation.ParsePayloadRange(c.Query("low"), c.Query("high")),
	})
	return c.Next()
}

// OptionalSelection parses the same parameters but falls back to all sites
// instead of rejecting the request. Used by HTML routes.
func OptionalSelection(c fiber.Ctx) error {
	c.Locals(selectionKey, Selection{
		Site:  validation.SiteOrAll(c.Query("site")),
		Range: validation.ParsePayloadRange(c.Query("low"), c.Query("high")),
	})
	return c.Next()
}

// SelectionFrom returns the selection stored by the selection middleware,
// or all sites over the default range if none was stored.
func SelectionFrom(c fiber.Ctx) Selection {
	if sel, ok := c.Locals(selectionKey).(Selection); ok {
		return sel
	}
	return Selection{Site: models.AllSites, Range: analytics.DefaultPayloadRange()}
}
