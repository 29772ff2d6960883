// Package solarsystem models a star, its planets and their moons in a 2D plane.
//
// Ownership flows top-down: a SolarSystem owns its Star, the Star owns its
// planets and every Planet owns its moons. Back-references (Moon.Planet,
// Planet.Star) are for navigation only and are cleared when a body is removed.
// A SolarSystem is not safe for concurrent use.
package solarsystem

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"gonum.org/v1/gonum/stat"

	astromath "github.com/oxygene76/planetarium/pkg/astronomy/math"
)

// SolarSystem is a star, its planets and the planets' moons
type SolarSystem struct {
	star *Star
	opts options
}

// NewSolarSystem creates a system whose star sits at the given absolute position
func NewSolarSystem(starPosition astromath.Position, starMass int64, opts ...Option) (*SolarSystem, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b, err := newBody(starPosition, starMass, o.starIdentifier)
	if err != nil {
		return nil, errorsmod.Wrap(err, "invalid star")
	}

	s := &SolarSystem{opts: o}
	s.star = &Star{
		body:       b,
		system:     s,
		maxPlanets: o.limits.MaxPlanets,
	}

	o.logger.Debug("solar system created", "star", b.identifier, "mass", starMass,
		"max_planets", o.limits.MaxPlanets, "max_moons", o.limits.MaxMoons)
	o.metrics.recordAdded(KindStar)
	return s, nil
}

// NewSolarSystemXY is NewSolarSystem taking the star position as coordinates
func NewSolarSystemXY(x, y float64, starMass int64, opts ...Option) (*SolarSystem, error) {
	return NewSolarSystem(astromath.NewPosition(x, y), starMass, opts...)
}

// Star returns the root of the system
func (s *SolarSystem) Star() *Star {
	return s.star
}

// Limits returns the capacity limits the system was built with
func (s *SolarSystem) Limits() Limits {
	return s.opts.limits
}

// Bodies flattens the tree: the star, then every planet followed by its moons,
// all in insertion order.
func (s *SolarSystem) Bodies() []CelestialBody {
	bodies := []CelestialBody{s.star}
	for _, planet := range s.star.planets {
		bodies = append(bodies, planet)
		for _, moon := range planet.moons {
			bodies = append(bodies, moon)
		}
	}
	return bodies
}

// FindCelestialBody finds the star, a planet or a moon given its identifier
func (s *SolarSystem) FindCelestialBody(identifier string) (CelestialBody, error) {
	found := s.lookup(identifier)
	s.opts.metrics.recordLookup(found != nil)
	if found == nil {
		return nil, errorsmod.Wrapf(ErrNotFound, "celestial body %s", identifier)
	}
	return found, nil
}

func (s *SolarSystem) lookup(identifier string) CelestialBody {
	if s.star.identifier == identifier {
		return s.star
	}
	if i := s.star.indexOfPlanet(identifier); i >= 0 {
		return s.star.planets[i]
	}
	for _, planet := range s.star.planets {
		if i := planet.indexOfMoon(identifier); i >= 0 {
			return planet.moons[i]
		}
	}
	return nil
}

func (s *SolarSystem) contains(identifier string) bool {
	return s.lookup(identifier) != nil
}

// TotalMass returns the mass of the star, the planets and the moons together
func (s *SolarSystem) TotalMass() sdkmath.Int {
	total := sdkmath.ZeroInt()
	for _, b := range s.Bodies() {
		total = total.AddRaw(b.Mass())
	}
	return total
}

// CenterOfMass returns the mass-weighted mean of the absolute positions of every
// body. A system without mass has its center of mass on the star.
func (s *SolarSystem) CenterOfMass() astromath.Position {
	if s.TotalMass().IsZero() {
		return s.star.Position()
	}

	bodies := s.Bodies()
	xs := make([]float64, len(bodies))
	ys := make([]float64, len(bodies))
	weights := make([]float64, len(bodies))
	for i, b := range bodies {
		position := b.Position()
		xs[i] = position.X
		ys[i] = position.Y
		weights[i] = float64(b.Mass())
	}

	return astromath.Position{
		X: stat.Mean(xs, weights),
		Y: stat.Mean(ys, weights),
	}
}
