package frames

import (
	"math"

	"github.com/thurmanmarka/parallax/internal/timeutil"
)

// UnitFromRADec converts equatorial coordinates (degrees) to a unit
// direction vector with +X toward the vernal equinox and +Z toward the
// north celestial pole.
func UnitFromRADec(raDeg, decDeg float64) Vec3 {
	ra := timeutil.Deg2Rad(raDeg)
	dec := timeutil.Deg2Rad(decDeg)
	cosDec := math.Cos(dec)
	return Vec3{
		X: cosDec * math.Cos(ra),
		Y: cosDec * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// RADecFromVec converts a Cartesian vector (any magnitude) back to
// equatorial coordinates. RA is in [0, 360) degrees.
func RADecFromVec(v Vec3) (raDeg, decDeg float64) {
	r := v.Norm()
	if r == 0 {
		return 0, 0
	}

	ra := math.Atan2(v.Y, v.X)
	if ra < 0 {
		ra += 2 * math.Pi
	}
	dec := math.Asin(v.Z / r)

	return timeutil.Rad2Deg(ra), timeutil.Rad2Deg(dec)
}

// EclipticToEquatorial rotates an ecliptic XYZ vector into equatorial
// XYZ about the +X axis by the obliquity epsRad (radians). Units are
// preserved.
func EclipticToEquatorial(ecl Vec3, epsRad float64) Vec3 {
	cosE := math.Cos(epsRad)
	sinE := math.Sin(epsRad)

	return Vec3{
		X: ecl.X,
		Y: ecl.Y*cosE - ecl.Z*sinE,
		Z: ecl.Y*sinE + ecl.Z*cosE,
	}
}
