package solarsystem

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Path is a sequence of bodies connected through the ownership tree, endpoints included
type Path []CelestialBody

// Identifiers returns the identifiers along the path
func (p Path) Identifiers() []string {
	ids := make([]string, len(p))
	for i, b := range p {
		ids[i] = b.Identifier()
	}
	return ids
}

// String renders the path as "S1P1M1 > S1P1 > S1 > S1P3"
func (p Path) String() string {
	return strings.Join(p.Identifiers(), " > ")
}

// Length sums the straight-line hops between consecutive bodies of the path
func (p Path) Length() float64 {
	var length float64
	for i := 1; i < len(p); i++ {
		length += p[i-1].Position().Distance(p[i].Position())
	}
	return length
}

// FindPath returns the unique path between two bodies, treating the star-planet
// and planet-moon links as undirected edges. The path climbs from the first body
// to the nearest common ancestor, then descends to the second one.
func (s *SolarSystem) FindPath(fromIdentifier, toIdentifier string) (Path, error) {
	from, err := s.FindCelestialBody(fromIdentifier)
	if err != nil {
		return nil, errorsmod.Wrap(err, "path start")
	}
	to, err := s.FindCelestialBody(toIdentifier)
	if err != nil {
		return nil, errorsmod.Wrap(err, "path end")
	}

	up := ancestry(from)
	down := ancestry(to)
	for i, a := range up {
		for j, b := range down {
			if a != b {
				continue
			}
			path := make(Path, 0, i+j+1)
			path = append(path, up[:i+1]...)
			for k := j - 1; k >= 0; k-- {
				path = append(path, down[k])
			}
			return path, nil
		}
	}

	// both ends resolved in this system, so they share the star
	return nil, errorsmod.Wrapf(ErrNotFound, "no path between %s and %s", fromIdentifier, toIdentifier)
}

// ancestry returns the body followed by its parent and grandparent
func ancestry(b CelestialBody) []CelestialBody {
	chain := make([]CelestialBody, 0, 3)
	for current := b; current != nil; current = current.Parent() {
		chain = append(chain, current)
	}
	return chain
}
