// Package parallax corrects observed sky coordinates for parallax: the
// angular displacement caused by observing from a site on the moving
// Earth rather than from the solar system barycenter.
//
// Given an observed ICRS right ascension/declination, an observation
// time, a ground site, and an assumed heliocentric distance, the
// package returns the barycentric coordinate the object would have and
// the implied observer-to-object distance. Two implementations are
// provided:
//
//   - Correct, the reference method, which brackets and bisects the
//     geocentric distance along the line of sight until the implied
//     heliocentric distance matches the assumed one.
//   - CorrectApprox, which solves the ray-sphere intersection
//     quadratic in closed form and is well over an order of magnitude
//     faster.
//
// Both share the same Earth ephemeris and frame conversions, so their
// outputs agree to well under a millidegree.
package parallax

import (
	"time"

	"github.com/thurmanmarka/parallax/internal/ephem"
	"github.com/thurmanmarka/parallax/internal/frames"
	"github.com/thurmanmarka/parallax/internal/solver"
)

// NoSolution is the distance value returned when the line of sight
// never reaches the assumed heliocentric sphere, whether the ray-sphere
// quadratic has no real roots or only roots behind the observer. It
// signals "no physical solution", not a program error, so no error
// value accompanies it.
const NoSolution = -1.0

// Method selects a correction implementation.
type Method int

const (
	// Reference is the iterative bracket-and-bisect implementation.
	Reference Method = iota

	// Approximate is the closed-form ray-sphere implementation.
	Approximate
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Reference:
		return "reference"
	case Approximate:
		return "approx"
	default:
		return "unknown"
	}
}

// SkyCoord represents an equatorial sky position in the ICRS
// (barycentric) frame. Dist is optional on input; on output it holds
// the barycentric distance of the corrected position.
type SkyCoord struct {
	RA   float64 // right ascension, degrees [0, 360)
	Dec  float64 // declination, degrees
	Dist float64 // distance, AU (0 = direction only)
}

// Site represents an observer's location on the Earth's surface.
type Site struct {
	Name   string  // optional display name
	Lat    float64 // geodetic latitude, degrees, north positive
	Lon    float64 // longitude, degrees, east positive
	Height float64 // meters above the WGS-84 ellipsoid
}

// Corrector performs parallax corrections with a fixed ephemeris model.
// The zero value is not usable; call NewCorrector.
type Corrector struct {
	provider ephem.Provider
}

// NewCorrector returns a Corrector using the named ephemeris model
// ("meeus" or "usno"). An empty name selects the default model.
func NewCorrector(model string) (*Corrector, error) {
	if model == "" {
		model = ephem.DefaultModel
	}
	p, err := ephem.ByName(model)
	if err != nil {
		return nil, err
	}
	return &Corrector{provider: p}, nil
}

// EphemerisName returns the name of the ephemeris model in use.
func (c *Corrector) EphemerisName() string {
	return c.provider.Name()
}

// CorrectFor runs the selected method. See Correct and CorrectApprox.
func (c *Corrector) CorrectFor(m Method, obs SkyCoord, t time.Time, site Site, distAU float64) (SkyCoord, float64) {
	switch m {
	case Approximate:
		return c.CorrectApprox(obs, t, site, distAU)
	default:
		return c.Correct(obs, t, site, distAU)
	}
}

// CorrectApprox corrects obs for parallax assuming the object lies
// distAU from the barycenter, solving the ray-sphere quadratic in
// closed form. It returns the corrected barycentric coordinate and the
// solved observer-to-object distance in AU.
//
// When no intersection exists ahead of the observer (or distAU is not
// positive) it returns the zero SkyCoord and NoSolution.
func (c *Corrector) CorrectApprox(obs SkyCoord, t time.Time, site Site, distAU float64) (SkyCoord, float64) {
	if distAU <= 0 {
		return SkyCoord{}, NoSolution
	}

	origin, dir := c.observerRay(obs, t, site)

	s, ok := solver.IntersectSphere(origin, dir, distAU)
	if !ok {
		return SkyCoord{}, NoSolution
	}

	return coordAt(origin, dir, s), s
}

// Correct is the reference implementation: it finds the same
// intersection as CorrectApprox by bracketing the zero of
// |origin + s*dir| - distAU and bisecting. Well over an order of
// magnitude slower; kept as the ground truth the closed form is
// validated against.
//
// The failure contract matches CorrectApprox: zero SkyCoord and
// NoSolution when the line of sight never reaches the sphere.
func (c *Corrector) Correct(obs SkyCoord, t time.Time, site Site, distAU float64) (SkyCoord, float64) {
	if distAU <= 0 {
		return SkyCoord{}, NoSolution
	}

	origin, dir := c.observerRay(obs, t, site)

	f := func(s float64) float64 {
		return origin.Add(dir.Scale(s)).Norm() - distAU
	}

	const (
		steps = 512  // samples across the bracket interval
		tol   = 1e-9 // AU; far below any ephemeris error
	)

	// The far intersection cannot lie beyond |origin| + distAU.
	res := solver.FindRadialCrossing(f, 0, origin.Norm()+distAU+1, steps, tol)
	if !res.OK {
		return SkyCoord{}, NoSolution
	}

	return coordAt(origin, dir, res.S), res.S
}

// observerRay builds the shared geometry: the observer's barycentric
// position (AU, equatorial axes) and the unit line-of-sight direction
// from the observed coordinate.
func (c *Corrector) observerRay(obs SkyCoord, t time.Time, site Site) (origin, dir frames.Vec3) {
	earth := c.provider.EarthBarycentric(t)

	ecef := frames.GeodeticToECEF(site.Lat, site.Lon, site.Height)
	topo := frames.ECEFToECI(ecef, t).Scale(1.0 / frames.AUMeters)

	return earth.Add(topo), frames.UnitFromRADec(obs.RA, obs.Dec)
}

// coordAt reconstructs the barycentric coordinate of the point s AU
// along the ray.
func coordAt(origin, dir frames.Vec3, s float64) SkyCoord {
	p := origin.Add(dir.Scale(s))
	ra, dec := frames.RADecFromVec(p)
	return SkyCoord{RA: ra, Dec: dec, Dist: p.Norm()}
}

// defaultCorrector backs the package-level convenience functions.
var defaultCorrector = &Corrector{provider: ephem.Default()}

// Correct runs the reference method with the default ephemeris model.
func Correct(obs SkyCoord, t time.Time, site Site, distAU float64) (SkyCoord, float64) {
	return defaultCorrector.Correct(obs, t, site, distAU)
}

// CorrectApprox runs the closed-form method with the default ephemeris
// model.
func CorrectApprox(obs SkyCoord, t time.Time, site Site, distAU float64) (SkyCoord, float64) {
	return defaultCorrector.CorrectApprox(obs, t, site, distAU)
}
