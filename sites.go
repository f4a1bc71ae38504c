package parallax

import "sort"

// builtinSites is a small registry of commonly used observatories,
// keyed by a short lowercase identifier. Heights are meters above the
// WGS-84 ellipsoid (close enough to the quoted site elevations for
// parallax work, where a few tens of meters are invisible).
var builtinSites = map[string]Site{
	"ctio": {
		Name:   "Cerro Tololo Inter-American Observatory",
		Lat:    -30.169661,
		Lon:    -70.806525,
		Height: 2207,
	},
	"cerro-pachon": {
		Name:   "Cerro Pachon (Rubin Observatory)",
		Lat:    -30.244639,
		Lon:    -70.749417,
		Height: 2663,
	},
	"apo": {
		Name:   "Apache Point Observatory",
		Lat:    32.780278,
		Lon:    -105.820278,
		Height: 2788,
	},
	"kitt-peak": {
		Name:   "Kitt Peak National Observatory",
		Lat:    31.963333,
		Lon:    -111.600000,
		Height: 2120,
	},
	"palomar": {
		Name:   "Palomar Observatory",
		Lat:    33.356000,
		Lon:    -116.863000,
		Height: 1712,
	},
}

// LookupSite returns the built-in site for a short identifier like
// "ctio" or "cerro-pachon".
func LookupSite(id string) (Site, bool) {
	s, ok := builtinSites[id]
	return s, ok
}

// SiteIDs returns the identifiers of all built-in sites, sorted.
func SiteIDs() []string {
	ids := make([]string, 0, len(builtinSites))
	for id := range builtinSites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
