package solver

import (
	"math"
	"testing"

	"github.com/thurmanmarka/parallax/internal/frames"
)

func TestIntersectSphereInside(t *testing.T) {
	// Origin 1 AU from the center, looking perpendicular to the radial
	// direction at a 2 AU sphere: s = sqrt(2^2 - 1^2) = sqrt(3).
	origin := frames.Vec3{X: 1, Y: 0, Z: 0}
	dir := frames.Vec3{X: 0, Y: 1, Z: 0}

	s, ok := IntersectSphere(origin, dir, 2)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if want := math.Sqrt(3); math.Abs(s-want) > 1e-12 {
		t.Errorf("s = %v, want %v", s, want)
	}
}

func TestIntersectSphereFromCenter(t *testing.T) {
	s, ok := IntersectSphere(frames.Vec3{}, frames.Vec3{X: 0, Y: 0, Z: 1}, 5)
	if !ok || math.Abs(s-5) > 1e-12 {
		t.Errorf("s = %v ok = %v, want 5 true", s, ok)
	}
}

func TestIntersectSphereMiss(t *testing.T) {
	// Line of sight parallel to Z from 2 AU out never reaches a 1 AU
	// sphere: negative discriminant.
	origin := frames.Vec3{X: 2, Y: 0, Z: 0}
	dir := frames.Vec3{X: 0, Y: 0, Z: 1}

	if _, ok := IntersectSphere(origin, dir, 1); ok {
		t.Error("expected no intersection")
	}
}

func TestIntersectSphereBehindObserver(t *testing.T) {
	// From 2 AU out looking directly away from a 1 AU sphere the
	// discriminant is positive but both roots are negative (-3 and -1):
	// the intersections lie behind the observer, so there is no
	// physical solution.
	origin := frames.Vec3{X: 2, Y: 0, Z: 0}
	dir := frames.Vec3{X: 1, Y: 0, Z: 0}

	if s, ok := IntersectSphere(origin, dir, 1); ok {
		t.Errorf("expected no intersection, got s = %v", s)
	}
}

func TestIntersectSpherePicksFarRoot(t *testing.T) {
	// From outside, moving through the sphere: the larger root is the
	// exit point. Origin (-3,0,0), direction +X, radius 1: exit at s=4.
	origin := frames.Vec3{X: -3, Y: 0, Z: 0}
	dir := frames.Vec3{X: 1, Y: 0, Z: 0}

	s, ok := IntersectSphere(origin, dir, 1)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if math.Abs(s-4) > 1e-12 {
		t.Errorf("s = %v, want 4", s)
	}
}

func sphereFunc(origin, dir frames.Vec3, radius float64) RadiusFunc {
	return func(s float64) float64 {
		return origin.Add(dir.Scale(s)).Norm() - radius
	}
}

func TestFindRadialCrossingMatchesClosedForm(t *testing.T) {
	cases := []struct {
		name   string
		origin frames.Vec3
		dir    frames.Vec3
		radius float64
	}{
		{"inside perpendicular", frames.Vec3{X: 1}, frames.Vec3{Y: 1}, 2},
		{"inside oblique", frames.Vec3{X: 0.9, Y: 0.1}, frames.Vec3{X: 0.3, Y: 0.8, Z: 0.52}.Normalized(), 50},
		{"from center", frames.Vec3{}, frames.Vec3{Z: 1}, 5},
		{"outside through", frames.Vec3{X: -3}, frames.Vec3{X: 1}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, ok := IntersectSphere(tc.origin, tc.dir, tc.radius)
			if !ok {
				t.Fatal("closed form found no intersection")
			}

			end := tc.origin.Norm() + tc.radius + 1
			res := FindRadialCrossing(sphereFunc(tc.origin, tc.dir, tc.radius), 0, end, 256, 1e-9)
			if !res.OK {
				t.Fatal("crossing solver found no intersection")
			}
			if math.Abs(res.S-want) > 1e-8 {
				t.Errorf("crossing s = %v, closed form %v", res.S, want)
			}
		})
	}
}

func TestFindRadialCrossingNoCrossing(t *testing.T) {
	// Same miss geometry as the closed-form test.
	f := sphereFunc(frames.Vec3{X: 2}, frames.Vec3{Z: 1}, 1)
	if res := FindRadialCrossing(f, 0, 10, 256, 1e-9); res.OK {
		t.Errorf("expected no crossing, got s = %v", res.S)
	}
}

func TestFindRadialCrossingBadInterval(t *testing.T) {
	f := sphereFunc(frames.Vec3{X: 1}, frames.Vec3{Y: 1}, 2)
	if res := FindRadialCrossing(f, 5, 5, 256, 1e-9); res.OK {
		t.Error("empty interval should not report a crossing")
	}
}
