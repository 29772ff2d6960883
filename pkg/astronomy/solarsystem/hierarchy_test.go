package solarsystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	astromath "github.com/oxygene76/planetarium/pkg/astronomy/math"
)

// newEarthSystem builds Sun, Earth at (1,0) with mass 5 and Luna at (0,1) from Earth with mass 1
func newEarthSystem(t *testing.T, opts ...Option) (*SolarSystem, *Planet, *Moon) {
	t.Helper()

	sys, err := NewSolarSystem(astromath.NewPosition(0, 0), 10, append([]Option{WithStarIdentifier("Sun")}, opts...)...)
	require.NoError(t, err)
	earth, err := sys.Star().AddNamedPlanet("Earth", astromath.NewPosition(1, 0), 5)
	require.NoError(t, err)
	luna, err := earth.AddNamedMoon("Luna", astromath.NewPosition(0, 1), 1)
	require.NoError(t, err)
	return sys, earth, luna
}

func TestAutoIdentifiers(t *testing.T) {
	sys, err := NewSolarSystemXY(0, 0, 3)
	require.NoError(t, err)
	star := sys.Star()

	p1, err := star.AddNewPlanetXY(1, 0, 1)
	require.NoError(t, err)
	p2, err := star.AddNewPlanetXY(2, 0, 1)
	require.NoError(t, err)
	m1, err := p2.AddNewMoonXY(0, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, "S1", star.Identifier())
	assert.Equal(t, "S1P1", p1.Identifier())
	assert.Equal(t, "S1P2", p2.Identifier())
	assert.Equal(t, "S1P2M1", m1.Identifier())

	// identifiers are never reused after a removal
	_, err = star.RemoveOldPlanet("S1P1")
	require.NoError(t, err)
	p3, err := star.AddNewPlanetXY(3, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "S1P3", p3.Identifier())

	m1.RemoveFromSystem()
	m2, err := p2.AddNewMoonXY(0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "S1P2M2", m2.Identifier())
}

func TestAutoIdentifiersSkipNamedClashes(t *testing.T) {
	sys, err := NewSolarSystemXY(0, 0, 3)
	require.NoError(t, err)
	star := sys.Star()

	named, err := star.AddNamedPlanet("S1P2", astromath.NewPosition(1, 0), 1)
	require.NoError(t, err)

	// the generated S1P2 clashes once, then generation moves past it
	_, err = star.AddNewPlanetXY(2, 0, 1)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
	assert.Equal(t, 1, star.NumberOfPlanets())

	p3, err := star.AddNewPlanetXY(3, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "S1P3", p3.Identifier())
	p4, err := star.AddNewPlanetXY(4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "S1P4", p4.Identifier())

	_, err = named.AddNamedMoon("S1P2M2", astromath.NewPosition(0, 1), 1)
	require.NoError(t, err)
	_, err = named.AddNewMoonXY(0, 2, 1)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
	m3, err := named.AddNewMoonXY(0, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, "S1P2M3", m3.Identifier())
	assert.Equal(t, 2, named.NumberOfMoons())
}

func TestAbsolutePositions(t *testing.T) {
	sys, err := NewSolarSystemXY(10, 20, 3)
	require.NoError(t, err)
	planet, err := sys.Star().AddNewPlanetXY(1, 2, 1)
	require.NoError(t, err)
	moon, err := planet.AddNewMoonXY(-3, 0.5, 1)
	require.NoError(t, err)

	assert.Equal(t, astromath.NewPosition(10, 20), sys.Star().Position())
	assert.Equal(t, astromath.NewPosition(11, 22), planet.Position())
	assert.Equal(t, astromath.NewPosition(8, 22.5), moon.Position())
	assert.Equal(t, astromath.NewPosition(-3, 0.5), moon.RelativePosition())
}

func TestDistances(t *testing.T) {
	_, earth, luna := newEarthSystem(t)

	assert.InDelta(t, 1.0, luna.DistanceToPlanet(), 1e-12)
	assert.InDelta(t, 1.0, earth.DistanceToStar(), 1e-12)

	sys, err := NewSolarSystemXY(0.5, -0.25, 3)
	require.NoError(t, err)
	planet, err := sys.Star().AddNewPlanetXY(3, 4, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, planet.DistanceToStar(), 1e-9)
}

func TestNavigation(t *testing.T) {
	sys, earth, luna := newEarthSystem(t)

	assert.Same(t, earth, luna.Planet())
	assert.Same(t, sys.Star(), earth.Star())
	assert.Equal(t, CelestialBody(earth), luna.Parent())
	assert.Equal(t, CelestialBody(sys.Star()), earth.Parent())
	assert.Nil(t, sys.Star().Parent())
	assert.True(t, luna.Attached())
	assert.True(t, earth.Attached())
}

func TestAddPlanetCapacity(t *testing.T) {
	sys, err := NewSolarSystemXY(0, 0, 3, WithLimits(Limits{MaxPlanets: 3}))
	require.NoError(t, err)
	star := sys.Star()
	assert.Equal(t, 3, star.MaxPlanets())

	for i := 0; i < 3; i++ {
		_, err := star.AddNewPlanetXY(float64(i+1), 0, 1)
		require.NoError(t, err)
		assert.Equal(t, i+1, star.NumberOfPlanets())
	}

	_, err = star.AddNewPlanetXY(9, 9, 1)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 3, star.NumberOfPlanets())

	// a failed addition does not consume an identifier
	_, err = star.RemoveOldPlanet("S1P2")
	require.NoError(t, err)
	p, err := star.AddNewPlanetXY(9, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, "S1P4", p.Identifier())
}

func TestAddMoonCapacity(t *testing.T) {
	sys, err := NewSolarSystemXY(0, 0, 3, WithLimits(Limits{MaxMoons: 2}))
	require.NoError(t, err)
	planet, err := sys.Star().AddNewPlanetXY(5, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, planet.MaxMoons())
	assert.Equal(t, MaxNumberOfPlanets, sys.Star().MaxPlanets())

	_, err = planet.AddNewMoonXY(0, 1, 1)
	require.NoError(t, err)
	_, err = planet.AddNewMoonXY(0, 2, 1)
	require.NoError(t, err)

	before := planet.Moons()
	_, err = planet.AddNewMoonXY(0, 3, 1)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, before, planet.Moons())
}

func TestDefaultCapacity(t *testing.T) {
	sys, err := NewSolarSystemXY(0, 0, 3)
	require.NoError(t, err)
	star := sys.Star()

	for i := 0; i < MaxNumberOfPlanets; i++ {
		_, err := star.AddNewPlanetXY(float64(i), 0, 1)
		require.NoError(t, err)
	}
	_, err = star.AddNewPlanetXY(0, 0, 1)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	planet := star.Planets()[0]
	for i := 0; i < MaxNumberOfMoons; i++ {
		_, err := planet.AddNewMoonXY(float64(i), 0, 1)
		require.NoError(t, err)
	}
	_, err = planet.AddNewMoonXY(0, 0, 1)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, MaxNumberOfMoons, planet.NumberOfMoons())
}

func TestDuplicateIdentifiers(t *testing.T) {
	sys, earth, _ := newEarthSystem(t)
	star := sys.Star()

	_, err := earth.AddNamedMoon("Luna", astromath.NewPosition(0, 2), 1)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
	assert.Equal(t, 1, earth.NumberOfMoons())

	_, err = star.AddNamedPlanet("Earth", astromath.NewPosition(2, 0), 1)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)

	// identifiers are unique across levels too
	_, err = star.AddNamedPlanet("Luna", astromath.NewPosition(2, 0), 1)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
	_, err = earth.AddNamedMoon("Sun", astromath.NewPosition(2, 0), 1)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
	assert.Equal(t, 1, star.NumberOfPlanets())

	// an auto-generated identifier colliding with a named body is rejected
	_, err = star.AddNamedPlanet("SunP3", astromath.NewPosition(3, 0), 1)
	require.NoError(t, err)
	_, err = star.AddNewPlanetXY(4, 0, 1)
	require.ErrorIs(t, err, ErrDuplicateIdentifier)
}

func TestAddRejectsInvalidArguments(t *testing.T) {
	sys, earth, _ := newEarthSystem(t)

	_, err := sys.Star().AddNewPlanetXY(1, 1, -5)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = earth.AddNewMoonXY(1, 1, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = earth.AddNamedMoon("  ", astromath.Position{}, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = sys.Star().AddNamedPlanet("", astromath.Position{}, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, 1, sys.Star().NumberOfPlanets())
	assert.Equal(t, 1, earth.NumberOfMoons())
}

func TestMoonsIsADefensiveCopy(t *testing.T) {
	sys, earth, luna := newEarthSystem(t)

	moons := earth.Moons()
	moons[0] = nil
	moons = append(moons, luna)
	assert.Len(t, moons, 2)

	assert.Equal(t, []*Moon{luna}, earth.Moons())

	planets := sys.Star().Planets()
	planets[0] = nil
	assert.Same(t, earth, sys.Star().Planets()[0])
}

func TestFindMoonAndPlanet(t *testing.T) {
	sys, earth, luna := newEarthSystem(t)

	found, err := earth.FindMoon("Luna")
	require.NoError(t, err)
	assert.Same(t, luna, found)

	_, err = earth.FindMoon("Phobos")
	require.ErrorIs(t, err, ErrNotFound)

	planet, err := sys.Star().FindPlanet("Earth")
	require.NoError(t, err)
	assert.Same(t, earth, planet)

	_, err = sys.Star().FindPlanet("Luna")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveOldMoon(t *testing.T) {
	sys, earth, luna := newEarthSystem(t)
	second, err := earth.AddNewMoonXY(0, -1, 1)
	require.NoError(t, err)

	removed, err := earth.RemoveOldMoon("Luna")
	require.NoError(t, err)
	assert.Same(t, luna, removed)
	assert.False(t, luna.Attached())
	assert.Nil(t, luna.Planet())
	assert.Nil(t, luna.Parent())
	assert.Equal(t, []*Moon{second}, earth.Moons())

	_, err = earth.RemoveOldMoon("Luna")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = sys.FindCelestialBody("Luna")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMoonRemoveFromSystemIsIdempotent(t *testing.T) {
	sys, earth, luna := newEarthSystem(t)

	luna.RemoveFromSystem()
	luna.RemoveFromSystem()

	assert.Equal(t, 0, earth.NumberOfMoons())
	_, err := sys.FindCelestialBody("Luna")
	require.ErrorIs(t, err, ErrNotFound)

	// a detached moon keeps its offset as position
	assert.Equal(t, astromath.NewPosition(0, 1), luna.Position())
}

func TestPlanetRemoveFromSystemCascades(t *testing.T) {
	sys, earth, luna := newEarthSystem(t)
	deimos, err := earth.AddNamedMoon("Deimos", astromath.NewPosition(2, 2), 1)
	require.NoError(t, err)
	mars, err := sys.Star().AddNamedPlanet("Mars", astromath.NewPosition(-3, 0), 2)
	require.NoError(t, err)

	earth.RemoveFromSystem()

	assert.False(t, earth.Attached())
	assert.False(t, luna.Attached())
	assert.False(t, deimos.Attached())
	assert.Equal(t, 0, earth.NumberOfMoons())
	assert.Equal(t, []*Planet{mars}, sys.Star().Planets())

	for _, id := range []string{"Earth", "Luna", "Deimos"} {
		_, err := sys.FindCelestialBody(id)
		require.ErrorIs(t, err, ErrNotFound, id)
	}

	// second call is a no-op, and a detached planet takes no moons
	earth.RemoveFromSystem()
	_, err = earth.AddNewMoonXY(1, 1, 1)
	require.ErrorIs(t, err, ErrNotFound)

	// the identifiers are free again
	_, err = sys.Star().AddNamedPlanet("Earth", astromath.NewPosition(1, 0), 5)
	require.NoError(t, err)
}

func TestRemoveOldPlanetCascades(t *testing.T) {
	sys, earth, luna := newEarthSystem(t)

	removed, err := sys.Star().RemoveOldPlanet("Earth")
	require.NoError(t, err)
	assert.Same(t, earth, removed)
	assert.Nil(t, earth.Star())
	assert.Nil(t, luna.Planet())
	assert.Equal(t, 0, sys.Star().NumberOfPlanets())

	_, err = sys.Star().RemoveOldPlanet("Earth")
	require.ErrorIs(t, err, ErrNotFound)

	// removing a moon of a removed planet is harmless
	luna.RemoveFromSystem()
}

func TestInsertionOrderSurvivesRemoval(t *testing.T) {
	sys, err := NewSolarSystemXY(0, 0, 1)
	require.NoError(t, err)
	star := sys.Star()
	for i := 0; i < 5; i++ {
		_, err := star.AddNewPlanetXY(float64(i+1), 0, 1)
		require.NoError(t, err)
	}

	_, err = star.RemoveOldPlanet("S1P3")
	require.NoError(t, err)

	var ids []string
	for _, p := range star.Planets() {
		ids = append(ids, p.Identifier())
	}
	assert.Equal(t, []string{"S1P1", "S1P2", "S1P4", "S1P5"}, ids)
}
