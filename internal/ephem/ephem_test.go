package ephem

import (
	"math"
	"testing"
	"time"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"meeus", "usno"} {
		p, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) returned error: %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, p.Name())
		}
	}

	if _, err := ByName("de440"); err == nil {
		t.Error("ByName with an unregistered model should fail")
	}
}

func TestDefault(t *testing.T) {
	if got := Default().Name(); got != DefaultModel {
		t.Errorf("Default().Name() = %q, want %q", got, DefaultModel)
	}
}

// TestEarthDistanceBounds checks that both models keep the Earth within
// its real heliocentric distance range across a year.
func TestEarthDistanceBounds(t *testing.T) {
	providers := []Provider{Meeus{}, USNO{}}

	for _, p := range providers {
		for month := time.January; month <= time.December; month++ {
			tt := time.Date(2023, month, 15, 0, 0, 0, 0, time.UTC)
			r := p.EarthBarycentric(tt).Norm()
			if r < 0.98 || r > 1.02 {
				t.Errorf("%s: |Earth| = %.5f AU at %v, outside [0.98, 1.02]", p.Name(), r, tt)
			}
		}
	}
}

// TestEarthPerihelionAphelion checks the annual distance extremes land
// near the right dates (perihelion early January, aphelion early July).
func TestEarthPerihelionAphelion(t *testing.T) {
	providers := []Provider{Meeus{}, USNO{}}

	for _, p := range providers {
		perihelion := p.EarthBarycentric(time.Date(2023, time.January, 4, 16, 0, 0, 0, time.UTC)).Norm()
		if perihelion > 0.985 {
			t.Errorf("%s: perihelion distance %.5f AU, want < 0.985", p.Name(), perihelion)
		}

		aphelion := p.EarthBarycentric(time.Date(2023, time.July, 6, 20, 0, 0, 0, time.UTC)).Norm()
		if aphelion < 1.015 {
			t.Errorf("%s: aphelion distance %.5f AU, want > 1.015", p.Name(), aphelion)
		}
	}
}

// TestEarthDirectionAtEquinox: at the March equinox the Sun sits at the
// equinox direction (+X), so the Earth sits at its antipode.
func TestEarthDirectionAtEquinox(t *testing.T) {
	equinox := time.Date(2023, time.March, 20, 21, 24, 0, 0, time.UTC)

	for _, p := range []Provider{Meeus{}, USNO{}} {
		e := p.EarthBarycentric(equinox)
		if e.X > -0.98 {
			t.Errorf("%s: Earth X = %.5f at equinox, want close to -1", p.Name(), e.X)
		}
		if math.Abs(e.Y) > 0.02 {
			t.Errorf("%s: Earth Y = %.5f at equinox, want near 0", p.Name(), e.Y)
		}
		if math.Abs(e.Z) > 0.01 {
			t.Errorf("%s: Earth Z = %.5f at equinox, want near 0", p.Name(), e.Z)
		}
	}
}

// TestProvidersAgree keeps the two analytic models consistent with each
// other at the few-ten-thousandths-of-an-AU level.
func TestProvidersAgree(t *testing.T) {
	meeus := Meeus{}
	usno := USNO{}

	dates := []time.Time{
		time.Date(2020, time.February, 1, 6, 0, 0, 0, time.UTC),
		time.Date(2022, time.August, 19, 12, 0, 0, 0, time.UTC),
		time.Date(2023, time.March, 20, 16, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC),
	}

	const tol = 0.002 // AU

	for _, d := range dates {
		a := meeus.EarthBarycentric(d)
		b := usno.EarthBarycentric(d)
		if math.Abs(a.X-b.X) > tol || math.Abs(a.Y-b.Y) > tol || math.Abs(a.Z-b.Z) > tol {
			t.Errorf("models disagree at %v: meeus=%+v usno=%+v", d, a, b)
		}
	}
}
