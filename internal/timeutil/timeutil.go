package timeutil

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the J2000.0 epoch (2000-01-01 12:00:00).
const J2000 = 2451545.0

// j2000 is the J2000.0 epoch as a time.Time: 2000-01-01 12:00:00 UTC.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DaysSinceJ2000 returns the number of (UTC) days since the J2000.0 epoch.
//
// This is an approximation suitable for low/medium-precision astronomy.
// For high-precision work you might want a true TT-based Julian day, but
// this is fine for our current purposes.
func DaysSinceJ2000(t time.Time) float64 {
	return t.UTC().Sub(j2000).Hours() / 24.0
}

// JulianDay returns the Julian Date for t, using the standard
// astronomical algorithm (valid for Gregorian calendar dates).
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	A := y / 100
	B := 2 - A + A/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(B) - 1524.5 +
		hour/24.0

	return jd
}

// JulianCenturies returns centuries since J2000.0.
func JulianCenturies(t time.Time) float64 {
	jd := JulianDay(t)
	return (jd - J2000) / 36525.0
}

// -----------------------------
// Basic degree/radian helpers.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
