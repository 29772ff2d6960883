package solarsystem

import (
	astromath "github.com/oxygene76/planetarium/pkg/astronomy/math"
)

// Moon orbits a planet. Its position is stored as an offset from the planet.
type Moon struct {
	body
	planet *Planet
}

// Kind returns KindMoon
func (m *Moon) Kind() Kind { return KindMoon }

// Planet returns the planet the moon orbits, or nil once the moon has been removed
func (m *Moon) Planet() *Planet {
	return m.planet
}

// Parent returns the owning planet
func (m *Moon) Parent() CelestialBody {
	if m.planet == nil {
		return nil
	}
	return m.planet
}

// Attached reports whether the moon still belongs to a planet
func (m *Moon) Attached() bool {
	return m.planet != nil
}

// Position returns the absolute position of the moon
func (m *Moon) Position() astromath.Position {
	position := m.RelativePosition()
	if m.planet != nil {
		position.Increase(m.planet.Position())
	}
	return position
}

// DistanceToPlanet is the orbiting radius of the moon
func (m *Moon) DistanceToPlanet() float64 {
	return m.RelativePosition().Magnitude()
}

// RemoveFromSystem asks the planet to drop the moon. Calling it on a detached moon does nothing.
func (m *Moon) RemoveFromSystem() {
	if m.planet == nil {
		return
	}
	m.planet.dropMoon(m)
}

func (m *Moon) String() string {
	return describe(m)
}
