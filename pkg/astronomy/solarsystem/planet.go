package solarsystem

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	astromath "github.com/oxygene76/planetarium/pkg/astronomy/math"
)

// Planet orbits the star and owns an ordered, bounded list of moons.
type Planet struct {
	body
	star     *Star
	moons    []*Moon
	maxMoons int
	// ordinal of the last auto-generated moon identifier, never reused
	nextMoon int
}

// Kind returns KindPlanet
func (p *Planet) Kind() Kind { return KindPlanet }

// Star returns the owning star, or nil once the planet has been removed
func (p *Planet) Star() *Star {
	return p.star
}

// Parent returns the owning star
func (p *Planet) Parent() CelestialBody {
	if p.star == nil {
		return nil
	}
	return p.star
}

// Attached reports whether the planet still belongs to a star
func (p *Planet) Attached() bool {
	return p.star != nil
}

// Position returns the absolute position of the planet
func (p *Planet) Position() astromath.Position {
	position := p.RelativePosition()
	if p.star != nil {
		position.Increase(p.star.Position())
	}
	return position
}

// DistanceToStar returns the distance between the planet and its star
func (p *Planet) DistanceToStar() float64 {
	if p.star == nil {
		return p.RelativePosition().Magnitude()
	}
	return p.Position().Distance(p.star.Position())
}

// Moons returns a copy of the moons in insertion order
func (p *Planet) Moons() []*Moon {
	moons := make([]*Moon, len(p.moons))
	copy(moons, p.moons)
	return moons
}

// NumberOfMoons returns how many moons orbit the planet
func (p *Planet) NumberOfMoons() int {
	return len(p.moons)
}

// MaxMoons returns the capacity of the planet
func (p *Planet) MaxMoons() int {
	return p.maxMoons
}

// FindMoon looks up a moon of this planet by identifier
func (p *Planet) FindMoon(identifier string) (*Moon, error) {
	if i := p.indexOfMoon(identifier); i >= 0 {
		return p.moons[i], nil
	}
	return nil, errorsmod.Wrapf(ErrNotFound, "moon %s of planet %s", identifier, p.identifier)
}

// AddNewMoon creates a moon at the given offset from the planet with an
// auto-generated identifier such as "S1P2M3". A generated identifier rejected
// as a duplicate uses up its ordinal, like in AddNewPlanet.
func (p *Planet) AddNewMoon(relativePosition astromath.Position, mass int64) (*Moon, error) {
	moon, err := p.addMoon(fmt.Sprintf("%sM%d", p.identifier, p.nextMoon+1), relativePosition, mass)
	if errorsmod.IsOf(err, ErrDuplicateIdentifier) {
		p.nextMoon++
	}
	return moon, err
}

// AddNewMoonXY is AddNewMoon taking the offset as coordinates
func (p *Planet) AddNewMoonXY(relativeX, relativeY float64, mass int64) (*Moon, error) {
	return p.AddNewMoon(astromath.NewPosition(relativeX, relativeY), mass)
}

// AddNamedMoon creates a moon with a caller-supplied identifier
func (p *Planet) AddNamedMoon(identifier string, relativePosition astromath.Position, mass int64) (*Moon, error) {
	return p.addMoon(identifier, relativePosition, mass)
}

func (p *Planet) addMoon(identifier string, relativePosition astromath.Position, mass int64) (*Moon, error) {
	if p.star == nil {
		return nil, errorsmod.Wrapf(ErrNotFound, "planet %s is not part of a system", p.identifier)
	}
	if len(p.moons) >= p.maxMoons {
		return nil, errorsmod.Wrapf(ErrCapacityExceeded, "planet %s already has %d moons", p.identifier, p.maxMoons)
	}

	b, err := newBody(relativePosition, mass, identifier)
	if err != nil {
		return nil, err
	}

	system := p.star.system
	if system.contains(identifier) {
		return nil, errorsmod.Wrapf(ErrDuplicateIdentifier, "identifier %s is already in use", identifier)
	}

	moon := &Moon{body: b, planet: p}
	p.moons = append(p.moons, moon)
	p.nextMoon++

	system.opts.logger.Debug("moon added", "id", identifier, "planet", p.identifier, "mass", mass)
	system.opts.metrics.recordAdded(KindMoon)
	return moon, nil
}

// RemoveOldMoon detaches the moon with the given identifier and returns it
func (p *Planet) RemoveOldMoon(identifier string) (*Moon, error) {
	i := p.indexOfMoon(identifier)
	if i < 0 {
		return nil, errorsmod.Wrapf(ErrNotFound, "moon %s of planet %s", identifier, p.identifier)
	}
	moon := p.moons[i]
	p.removeMoonAt(i)
	return moon, nil
}

// RemoveFromSystem detaches every moon of the planet, then asks the star to
// drop the planet. Calling it on a detached planet does nothing.
func (p *Planet) RemoveFromSystem() {
	if p.star == nil {
		return
	}
	p.star.dropPlanet(p)
}

func (p *Planet) String() string {
	return describe(p)
}

func (p *Planet) dropMoon(moon *Moon) {
	for i, m := range p.moons {
		if m == moon {
			p.removeMoonAt(i)
			return
		}
	}
}

func (p *Planet) removeMoonAt(i int) {
	moon := p.moons[i]
	p.moons = append(p.moons[:i], p.moons[i+1:]...)
	moon.planet = nil

	if p.star != nil {
		system := p.star.system
		system.opts.logger.Debug("moon removed", "id", moon.identifier, "planet", p.identifier)
		system.opts.metrics.recordRemoved(KindMoon)
	}
}

// detachMoons drops every moon, last first so the slice never shifts
func (p *Planet) detachMoons() {
	for i := len(p.moons) - 1; i >= 0; i-- {
		p.removeMoonAt(i)
	}
}

func (p *Planet) indexOfMoon(identifier string) int {
	for i, m := range p.moons {
		if m.identifier == identifier {
			return i
		}
	}
	return -1
}
