package solarsystem

import (
	"fmt"
	"math"
)

// Collision is a pair of bodies whose centers are closer than the sum of their radii
type Collision struct {
	First    CelestialBody
	Second   CelestialBody
	Distance float64
}

func (c Collision) String() string {
	return fmt.Sprintf("%s <-> %s (distance %.3f)", c.First.Identifier(), c.Second.Identifier(), c.Distance)
}

// Radius returns the collision radius of a body
func (s *SolarSystem) Radius(b CelestialBody) float64 {
	return s.opts.radius(b.Mass())
}

// DetectCollisions checks every pair of bodies of the system. Pairs are reported
// in traversal order, the first body of a pair always preceding the second.
func (s *SolarSystem) DetectCollisions() []Collision {
	bodies := s.Bodies()

	type scanned struct {
		body   CelestialBody
		x, y   float64
		radius float64
	}
	items := make([]scanned, len(bodies))
	for i, b := range bodies {
		position := b.Position()
		items[i] = scanned{body: b, x: position.X, y: position.Y, radius: s.Radius(b)}
	}

	var collisions []Collision
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			a, b := items[i], items[j]
			distance := math.Hypot(a.x-b.x, a.y-b.y)
			if distance < a.radius+b.radius {
				collisions = append(collisions, Collision{
					First:    a.body,
					Second:   b.body,
					Distance: distance,
				})
			}
		}
	}

	s.opts.metrics.recordCollisionScan(len(collisions))
	return collisions
}

// HasCollisions reports whether any pair of bodies collides
func (s *SolarSystem) HasCollisions() bool {
	return len(s.DetectCollisions()) > 0
}
