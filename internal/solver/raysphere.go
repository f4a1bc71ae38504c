// Package solver finds where a line of sight meets a sphere centered on
// the origin, either in closed form or by bracketing a radial crossing.
package solver

import (
	"math"

	"github.com/thurmanmarka/parallax/internal/frames"
)

// IntersectSphere solves |origin + s*dir| = radius for s in closed
// form: the ray-sphere quadratic a*s^2 + b*s + c = 0 with a = |dir|^2,
// b = 2*(dir.origin), c = |origin|^2 - radius^2.
//
// It returns the larger root, which is the only physically meaningful
// one when the ray starts inside the sphere (the usual case: origin is
// near 1 AU from the barycenter and the sphere radius is at least
// 1 AU). ok is false when the line of sight never reaches the sphere:
// either the discriminant is negative, or the origin lies outside the
// sphere looking away from it, leaving both roots behind the observer.
func IntersectSphere(origin, dir frames.Vec3, radius float64) (s float64, ok bool) {
	a := dir.Dot(dir)
	b := 2 * dir.Dot(origin)
	c := origin.Dot(origin) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	s = (-b + math.Sqrt(disc)) / (2 * a)
	if s <= 0 {
		return 0, false
	}

	return s, true
}

// RadiusFunc returns a signed distance-to-sphere value at parameter s.
type RadiusFunc func(s float64) float64

// Result holds the output of a radial crossing search.
type Result struct {
	S  float64 // parameter value of the crossing
	OK bool    // true if a crossing was found
}

// FindRadialCrossing searches [start, end] for a point where f crosses
// zero from below, using a sample-then-bisect strategy. For parallax
// work f(s) = |origin + s*dir| - radius, so the upward crossing is the
// far intersection with the sphere, matching the root IntersectSphere
// picks.
func FindRadialCrossing(f RadiusFunc, start, end float64, steps int, tol float64) Result {
	if start >= end {
		return Result{OK: false}
	}
	if steps < 2 {
		steps = 2
	}

	// Step 1: sample across [start, end] to find a sign change.
	interval := (end - start) / float64(steps-1)

	var (
		prevS = start
		prevF = f(prevS)
	)

	for i := 1; i < steps; i++ {
		s := start + float64(i)*interval
		fs := f(s)

		if prevF < 0 && fs >= 0 {
			// We have a bracket [prevS, s].
			return bisect(f, prevS, s, tol)
		}

		prevS, prevF = s, fs
	}

	// No crossing found.
	return Result{OK: false}
}

func bisect(f RadiusFunc, a, b float64, tol float64) Result {
	// Simple safety check.
	if !(f(a) < 0 && f(b) >= 0) {
		return Result{OK: false}
	}

	for b-a > tol {
		mid := a + (b-a)/2
		if f(mid) >= 0 {
			b = mid
		} else {
			a = mid
		}
	}

	return Result{
		S:  a + (b-a)/2,
		OK: true,
	}
}
