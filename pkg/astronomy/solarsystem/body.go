package solarsystem

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"

	astromath "github.com/oxygene76/planetarium/pkg/astronomy/math"
)

// Kind tells which level of the hierarchy a body lives on
type Kind int

const (
	KindStar Kind = iota
	KindPlanet
	KindMoon
)

func (k Kind) String() string {
	switch k {
	case KindStar:
		return "Star"
	case KindPlanet:
		return "Planet"
	case KindMoon:
		return "Moon"
	default:
		return "Unknown"
	}
}

// CelestialBody is an object of the system with an identifier, a position and a mass.
//
// RelativePosition is the offset from the parent body; Position resolves it to an
// absolute position by adding every ancestor offset up to the star.
type CelestialBody interface {
	Identifier() string
	Mass() int64
	Kind() Kind
	RelativePosition() astromath.Position
	Position() astromath.Position
	// Parent returns nil for the star and for detached bodies
	Parent() CelestialBody
	String() string
}

// body holds the fields shared by stars, planets and moons
type body struct {
	identifier string
	mass       int64
	position   astromath.Position
}

func newBody(position astromath.Position, mass int64, identifier string) (body, error) {
	if mass < 0 {
		return body{}, errorsmod.Wrapf(ErrInvalidArgument, "mass must be non-negative, got %d", mass)
	}
	if strings.TrimSpace(identifier) == "" {
		return body{}, errorsmod.Wrap(ErrInvalidArgument, "identifier cannot be blank")
	}
	return body{
		identifier: identifier,
		mass:       mass,
		position:   position,
	}, nil
}

// Identifier returns the unique identifier of the body
func (b *body) Identifier() string {
	return b.identifier
}

// Mass returns the mass of the body
func (b *body) Mass() int64 {
	return b.mass
}

// RelativePosition returns a copy of the offset from the parent body
func (b *body) RelativePosition() astromath.Position {
	return b.position
}

func describe(b CelestialBody) string {
	return fmt.Sprintf("[ %s: %s\t\tmass: %d\t\tposition: %s ]",
		b.Kind(), b.Identifier(), b.Mass(), b.Position())
}
