// Package ephem provides analytic Earth position models.
//
// Each provider returns the barycentric Cartesian position of the Earth
// center at a given time, in AU, on equatorial axes (+X toward the
// vernal equinox, +Z toward the north celestial pole). The solar system
// barycenter is approximated by the Sun's center; the offset between
// the two (under 0.01 AU) cancels when two methods share a provider.
package ephem

import (
	"fmt"
	"time"

	"github.com/thurmanmarka/parallax/internal/frames"
)

// DefaultModel is the provider used when no model name is given.
const DefaultModel = "meeus"

// Provider is an ephemeris model that can place the Earth at a time.
type Provider interface {
	// Name returns the model name for display/logging.
	Name() string

	// EarthBarycentric returns the Earth's barycentric position at t,
	// in AU on equatorial axes.
	EarthBarycentric(t time.Time) frames.Vec3
}

// ByName returns the provider for a model name ("meeus" or "usno").
func ByName(name string) (Provider, error) {
	switch name {
	case "meeus":
		return Meeus{}, nil
	case "usno":
		return USNO{}, nil
	default:
		return nil, fmt.Errorf("unknown ephemeris model %q (use meeus or usno)", name)
	}
}

// Default returns the default provider.
func Default() Provider {
	p, err := ByName(DefaultModel)
	if err != nil {
		panic(err) // DefaultModel is always registered
	}
	return p
}
