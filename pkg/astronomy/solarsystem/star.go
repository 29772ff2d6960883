package solarsystem

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	astromath "github.com/oxygene76/planetarium/pkg/astronomy/math"
)

// Star is the root of the system. Its position is absolute.
type Star struct {
	body
	system     *SolarSystem
	planets    []*Planet
	maxPlanets int
	nextPlanet int
}

// Kind returns KindStar
func (s *Star) Kind() Kind { return KindStar }

// Parent always returns nil, the star is the root
func (s *Star) Parent() CelestialBody { return nil }

// Position returns the absolute position of the star
func (s *Star) Position() astromath.Position {
	return s.RelativePosition()
}

// Planets returns a copy of the planets in insertion order
func (s *Star) Planets() []*Planet {
	planets := make([]*Planet, len(s.planets))
	copy(planets, s.planets)
	return planets
}

// NumberOfPlanets returns how many planets orbit the star
func (s *Star) NumberOfPlanets() int {
	return len(s.planets)
}

// MaxPlanets returns the capacity of the star
func (s *Star) MaxPlanets() int {
	return s.maxPlanets
}

// FindPlanet looks up a planet of this star by identifier
func (s *Star) FindPlanet(identifier string) (*Planet, error) {
	if i := s.indexOfPlanet(identifier); i >= 0 {
		return s.planets[i], nil
	}
	return nil, errorsmod.Wrapf(ErrNotFound, "planet %s", identifier)
}

// AddNewPlanet creates a planet at the given offset from the star with an
// auto-generated identifier such as "S1P4". When the generated identifier is
// already taken by a named body the ordinal is still used up, so the next call
// tries the following one.
func (s *Star) AddNewPlanet(relativePosition astromath.Position, mass int64) (*Planet, error) {
	planet, err := s.addPlanet(fmt.Sprintf("%sP%d", s.identifier, s.nextPlanet+1), relativePosition, mass)
	if errorsmod.IsOf(err, ErrDuplicateIdentifier) {
		s.nextPlanet++
	}
	return planet, err
}

// AddNewPlanetXY is AddNewPlanet taking the offset as coordinates
func (s *Star) AddNewPlanetXY(relativeX, relativeY float64, mass int64) (*Planet, error) {
	return s.AddNewPlanet(astromath.NewPosition(relativeX, relativeY), mass)
}

// AddNamedPlanet creates a planet with a caller-supplied identifier
func (s *Star) AddNamedPlanet(identifier string, relativePosition astromath.Position, mass int64) (*Planet, error) {
	return s.addPlanet(identifier, relativePosition, mass)
}

func (s *Star) addPlanet(identifier string, relativePosition astromath.Position, mass int64) (*Planet, error) {
	if len(s.planets) >= s.maxPlanets {
		return nil, errorsmod.Wrapf(ErrCapacityExceeded, "star %s already has %d planets", s.identifier, s.maxPlanets)
	}

	b, err := newBody(relativePosition, mass, identifier)
	if err != nil {
		return nil, err
	}
	if s.system.contains(identifier) {
		return nil, errorsmod.Wrapf(ErrDuplicateIdentifier, "identifier %s is already in use", identifier)
	}

	planet := &Planet{
		body:     b,
		star:     s,
		maxMoons: s.system.opts.limits.MaxMoons,
	}
	s.planets = append(s.planets, planet)
	s.nextPlanet++

	s.system.opts.logger.Debug("planet added", "id", identifier, "star", s.identifier, "mass", mass)
	s.system.opts.metrics.recordAdded(KindPlanet)
	return planet, nil
}

// RemoveOldPlanet detaches the planet with the given identifier, together with
// all of its moons, and returns it.
func (s *Star) RemoveOldPlanet(identifier string) (*Planet, error) {
	i := s.indexOfPlanet(identifier)
	if i < 0 {
		return nil, errorsmod.Wrapf(ErrNotFound, "planet %s", identifier)
	}
	planet := s.planets[i]
	s.removePlanetAt(i)
	return planet, nil
}

func (s *Star) String() string {
	return describe(s)
}

func (s *Star) dropPlanet(planet *Planet) {
	for i, p := range s.planets {
		if p == planet {
			s.removePlanetAt(i)
			return
		}
	}
}

func (s *Star) removePlanetAt(i int) {
	planet := s.planets[i]
	moons := planet.NumberOfMoons()
	planet.detachMoons()

	s.planets = append(s.planets[:i], s.planets[i+1:]...)
	planet.star = nil

	s.system.opts.logger.Debug("planet removed", "id", planet.identifier, "star", s.identifier, "moons", moons)
	s.system.opts.metrics.recordRemoved(KindPlanet)
}

func (s *Star) indexOfPlanet(identifier string) int {
	for i, p := range s.planets {
		if p.identifier == identifier {
			return i
		}
	}
	return -1
}
