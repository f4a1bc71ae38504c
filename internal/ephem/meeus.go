package ephem

import (
	"math"
	"time"

	"github.com/thurmanmarka/parallax/internal/frames"
	"github.com/thurmanmarka/parallax/internal/timeutil"
)

// Meeus is the default Earth position model, built on the medium-
// precision solar theory from Meeus, "Astronomical Algorithms" ch. 25.
// The Earth's heliocentric position is the antipode of the Sun's
// geocentric one. Good to roughly 0.01 degrees in longitude.
type Meeus struct{}

// Name implements Provider.
func (Meeus) Name() string { return "meeus" }

// EarthBarycentric implements Provider.
func (Meeus) EarthBarycentric(t time.Time) frames.Vec3 {
	T := timeutil.JulianCenturies(t)

	// Mean longitude and mean anomaly of the Sun (degrees).
	L0 := timeutil.Normalize360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := timeutil.Normalize360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := timeutil.Deg2Rad(M)

	// Equation of center (degrees).
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	// True longitude and true anomaly (degrees).
	sunLon := L0 + C
	nu := M + C

	// Radius vector (AU), with e the eccentricity of Earth's orbit.
	e := 0.016708634 - 0.000042037*T - 0.0000001267*T*T
	R := 1.000001018 * (1 - e*e) / (1 + e*math.Cos(timeutil.Deg2Rad(nu)))

	// Mean obliquity of the ecliptic (degrees).
	eps := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T

	// The Earth sits opposite the geocentric Sun.
	earthLon := timeutil.Deg2Rad(sunLon + 180.0)
	ecl := frames.Vec3{
		X: R * math.Cos(earthLon),
		Y: R * math.Sin(earthLon),
		Z: 0,
	}

	return frames.EclipticToEquatorial(ecl, timeutil.Deg2Rad(eps))
}
