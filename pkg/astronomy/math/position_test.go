package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionMutators(t *testing.T) {
	p := NewPosition(1, 2)

	p.Increase(NewPosition(3, -4))
	assert.Equal(t, Position{X: 4, Y: -2}, p)

	p.IncreaseX(0.5)
	p.IncreaseY(2)
	assert.Equal(t, Position{X: 4.5, Y: 0}, p)

	ret := p.MultiplyBy(2)
	require.Same(t, &p, ret)
	assert.Equal(t, Position{X: 9, Y: 0}, p)

	p.Y = 3
	p.MultiplyByXY(-1, 2)
	assert.Equal(t, Position{X: -9, Y: 6}, p)
}

func TestPositionValueHelpers(t *testing.T) {
	a := NewPosition(3, 4)
	b := NewPosition(1, 1)

	assert.Equal(t, Position{X: 4, Y: 5}, a.Add(b))
	assert.Equal(t, Position{X: 2, Y: 3}, a.Sub(b))
	assert.Equal(t, Position{X: 6, Y: 8}, a.Scale(2))
	assert.InDelta(t, 5.0, a.Magnitude(), 1e-12)
	assert.InDelta(t, math.Sqrt(13), a.Distance(b), 1e-12)

	// value helpers never touch the receiver
	assert.Equal(t, Position{X: 3, Y: 4}, a)

	assert.True(t, Position{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "( 12.000 , -7.445 )", NewPosition(12, -7.445).String())
}

func TestPositionPassesNaNThrough(t *testing.T) {
	p := NewPosition(math.NaN(), math.Inf(1))
	p.IncreaseX(1)
	assert.True(t, math.IsNaN(p.X))
	assert.True(t, math.IsInf(p.Y, 1))
}
