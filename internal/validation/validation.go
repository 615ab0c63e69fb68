package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"launchdash/internal/analytics"
	"launchdash/internal/models"
)

// MaxSiteLength bounds the length of a site selector value.
const MaxSiteLength = 100

// ErrInvalidSite is returned for site selectors that cannot name any site.
var ErrInvalidSite = errors.New("invalid site selector")

// ParseSite normalizes a site selector. Empty input and any casing of
// "all" select every site. Unknown but well-formed names are passed
// through; they simply match no records.
func ParseSite(raw string) (string, error) {
	site := strings.TrimSpace(raw)
	if site == "" || strings.EqualFold(site, models.AllSites) {
		return models.AllSites, nil
	}
	if len(site) > MaxSiteLength {
		return "", ErrInvalidSite
	}
	for _, r := range site {
		if unicode.IsControl(r) {
			return "", ErrInvalidSite
		}
	}
	return site, nil
}

// SiteOrAll is ParseSite for callers that fall back to every site instead
// of rejecting the request.
func SiteOrAll(raw string) string {
	site, err := ParseSite(raw)
	if err != nil {
		return models.AllSites
	}
	return site
}

// ParsePayloadRange builds a payload range from raw low/high query values.
// A missing bound takes its default (0 or 10000). If either bound is
// present but not a finite number, the whole range falls back to the
// default. Inverted ranges are returned as-is and filter to nothing.
func ParsePayloadRange(low, high string) analytics.PayloadRange {
	rng := analytics.DefaultPayloadRange()

	if v, ok, err := parseBound(low); err != nil {
		return analytics.DefaultPayloadRange()
	} else if ok {
		rng.Low = v
	}

	if v, ok, err := parseBound(high); err != nil {
		return analytics.DefaultPayloadRange()
	} else if ok {
		rng.High = v
	}

	return rng
}

// parseBound parses one bound. ok is false when the value is absent.
func parseBound(raw string) (v float64, ok bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, strconv.ErrSyntax
	}
	return v, true, nil
}
