package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/thurmanmarka/parallax"
)

// parseObsTime parses an observation timestamp. Bare dates and local
// layouts without a zone are interpreted as UTC.
func parseObsTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}

	// Try a couple of common formats.
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse time %q", s)
}

// resolveSite picks the observer location: a named site (from the
// optional TOML file, falling back to the built-in registry) or
// explicit lat/lon/height flags.
func resolveSite(siteID string, lat, lon, height float64) (parallax.Site, error) {
	if siteID == "" {
		if lat == 0 && lon == 0 {
			log.Warn().Msg("lat=0 lon=0 (Gulf of Guinea); use --site or --lat/--lon to set a real location")
		}
		return parallax.Site{Lat: lat, Lon: lon, Height: height}, nil
	}

	if sitesPath != "" {
		extra, err := loadSitesFile(sitesPath)
		if err != nil {
			return parallax.Site{}, err
		}
		if s, ok := extra[siteID]; ok {
			return s, nil
		}
	}

	if s, ok := parallax.LookupSite(siteID); ok {
		return s, nil
	}
	return parallax.Site{}, fmt.Errorf("unknown site %q (try the sites subcommand)", siteID)
}
