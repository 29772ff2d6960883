package math

import (
	"fmt"
	"math"
)

// Position represents a point (or offset) in the 2D plane
type Position struct {
	X, Y float64
}

// NewPosition returns a position with the given coordinates
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Increase adds other to the position in place
func (p *Position) Increase(other Position) {
	p.X += other.X
	p.Y += other.Y
}

// IncreaseX shifts the position along the x-axis
func (p *Position) IncreaseX(amount float64) { p.X += amount }

// IncreaseY shifts the position along the y-axis
func (p *Position) IncreaseY(amount float64) { p.Y += amount }

// MultiplyBy scales both coordinates in place and returns the receiver
func (p *Position) MultiplyBy(amount float64) *Position {
	p.X *= amount
	p.Y *= amount
	return p
}

// MultiplyByXY scales each coordinate by its own factor and returns the receiver
func (p *Position) MultiplyByXY(amountX, amountY float64) *Position {
	p.X *= amountX
	p.Y *= amountY
	return p
}

// Add returns the sum of two positions
func (p Position) Add(other Position) Position {
	return Position{
		X: p.X + other.X,
		Y: p.Y + other.Y,
	}
}

// Sub returns the difference between two positions
func (p Position) Sub(other Position) Position {
	return Position{
		X: p.X - other.X,
		Y: p.Y - other.Y,
	}
}

// Scale returns the position scaled by a scalar
func (p Position) Scale(s float64) Position {
	return Position{
		X: p.X * s,
		Y: p.Y * s,
	}
}

// Magnitude returns the distance from the origin
func (p Position) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the euclidean distance between two positions
func (p Position) Distance(other Position) float64 {
	return p.Sub(other).Magnitude()
}

// IsZero checks if the position is the origin
func (p Position) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// String formats the position as "( 12.000 , -7.445 )"
func (p Position) String() string {
	return fmt.Sprintf("( %.3f , %.3f )", p.X, p.Y)
}
