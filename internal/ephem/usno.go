package ephem

import (
	"math"
	"time"

	"github.com/thurmanmarka/parallax/internal/frames"
	"github.com/thurmanmarka/parallax/internal/timeutil"
)

// USNO is a cheaper Earth position model based on the USNO approximate
// solar coordinates (linear mean elements, two periodic terms). A few
// hundredths of a degree in longitude; useful as a cross-check against
// the Meeus model and when many evaluations are needed.
type USNO struct{}

// Name implements Provider.
func (USNO) Name() string { return "usno" }

// EarthBarycentric implements Provider.
func (USNO) EarthBarycentric(t time.Time) frames.Vec3 {
	d := timeutil.DaysSinceJ2000(t)

	// Mean anomaly and mean longitude of the Sun (degrees).
	g := 357.529 + 0.98560028*d
	q := 280.459 + 0.98564736*d

	sg, cg := math.Sincos(timeutil.Deg2Rad(g))
	sg2, cg2 := math.Sincos(timeutil.Deg2Rad(2 * g))

	// Geocentric ecliptic longitude of the Sun and Sun-Earth distance.
	l := q + 1.915*sg + 0.020*sg2
	r := 1.00014 - 0.01671*cg - 0.00014*cg2

	// Obliquity of the ecliptic (degrees).
	eps := 23.439 - 0.00000036*d

	earthLon := timeutil.Deg2Rad(l + 180.0)
	ecl := frames.Vec3{
		X: r * math.Cos(earthLon),
		Y: r * math.Sin(earthLon),
		Z: 0,
	}

	return frames.EclipticToEquatorial(ecl, timeutil.Deg2Rad(eps))
}
