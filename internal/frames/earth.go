package frames

import (
	"math"
	"time"

	"github.com/thurmanmarka/parallax/internal/timeutil"
)

// WGS-84 ellipsoid parameters.
const (
	wgs84A  = 6378137.0             // semi-major axis (meters)
	wgs84F  = 1.0 / 298.257223563   // flattening
	wgs84E2 = wgs84F * (2 - wgs84F) // first eccentricity squared
)

// GeodeticToECEF converts a geodetic ground location (latitude and
// longitude in degrees, height in meters above the WGS-84 ellipsoid)
// to an Earth-centered Earth-fixed Cartesian position in meters.
func GeodeticToECEF(latDeg, lonDeg, heightM float64) Vec3 {
	lat := timeutil.Deg2Rad(latDeg)
	lon := timeutil.Deg2Rad(lonDeg)

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)

	// Radius of curvature in the prime vertical.
	N := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)

	return Vec3{
		X: (N + heightM) * cosLat * math.Cos(lon),
		Y: (N + heightM) * cosLat * math.Sin(lon),
		Z: (N*(1-wgs84E2) + heightM) * sinLat,
	}
}

// GMST returns Greenwich Mean Sidereal Time in radians for a UTC time,
// using the IAU-82 model (Vallado Eq 3-47). UT1 is approximated by UTC,
// which is fine at the sub-arcsecond-of-time level this package needs.
func GMST(t time.Time) float64 {
	tUT1 := (timeutil.JulianDay(t) - timeutil.J2000) / 36525.0

	// GMST in seconds of time. 876600h = 3155760000 seconds.
	gmstSec := 67310.54841 +
		(3155760000.0+8640184.812866)*tUT1 +
		0.093104*tUT1*tUT1 -
		6.2e-6*tUT1*tUT1*tUT1

	gmstSec = math.Mod(gmstSec, 86400.0)
	if gmstSec < 0 {
		gmstSec += 86400.0
	}

	return gmstSec / 86400.0 * 2.0 * math.Pi
}

// ECEFToECI rotates an Earth-fixed vector into the Earth-centered
// inertial frame at time t (rotation about +Z by GMST). Units are
// preserved.
func ECEFToECI(v Vec3, t time.Time) Vec3 {
	g := GMST(t)
	sinG, cosG := math.Sincos(g)

	return Vec3{
		X: v.X*cosG - v.Y*sinG,
		Y: v.X*sinG + v.Y*cosG,
		Z: v.Z,
	}
}
