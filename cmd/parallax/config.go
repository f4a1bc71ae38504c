package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/thurmanmarka/parallax"
)

// Sites file format:
//
//	[[site]]
//	id = "vro"
//	name = "Vera C. Rubin Observatory"
//	lat = -30.244639
//	lon = -70.749417
//	height = 2663
type fileSite struct {
	ID     string  `toml:"id"`
	Name   string  `toml:"name"`
	Lat    float64 `toml:"lat"`
	Lon    float64 `toml:"lon"`
	Height float64 `toml:"height"`
}

type sitesFile struct {
	Sites []fileSite `toml:"site"`
}

// loadSitesFile reads extra observer sites from a TOML file, keyed by
// their lowercase id.
func loadSitesFile(path string) (map[string]parallax.Site, error) {
	var raw sitesFile
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("load sites file: %w", err)
	}

	out := make(map[string]parallax.Site, len(raw.Sites))
	for i, s := range raw.Sites {
		id := strings.ToLower(strings.TrimSpace(s.ID))
		if id == "" {
			return nil, fmt.Errorf("sites file %s: site %d has no id", path, i+1)
		}
		if s.Lat < -90 || s.Lat > 90 {
			return nil, fmt.Errorf("site %q: latitude %v out of range", id, s.Lat)
		}
		if s.Lon < -180 || s.Lon > 360 {
			return nil, fmt.Errorf("site %q: longitude %v out of range", id, s.Lon)
		}

		name := strings.TrimSpace(s.Name)
		if name == "" {
			name = id
		}
		out[id] = parallax.Site{
			Name:   name,
			Lat:    s.Lat,
			Lon:    s.Lon,
			Height: s.Height,
		}
	}
	return out, nil
}
