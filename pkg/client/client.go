package client

import (
	"fmt"
	"math/rand"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	"github.com/oxygene76/planetarium/internal/types"
	astromath "github.com/oxygene76/planetarium/pkg/astronomy/math"
	"github.com/oxygene76/planetarium/pkg/astronomy/solarsystem"
	"github.com/oxygene76/planetarium/pkg/utils"
)

const (
	// generated planets are placed within this distance of the star on each axis
	planetSpread = 100.0
	// generated moons are placed within this distance of their planet on each axis
	moonSpread = 10.0
	// generated masses are drawn from [1, maxGeneratedMass]
	maxGeneratedMass = 100
)

// PlanetariumClient drives one solar system through identifier-based commands
type PlanetariumClient struct {
	config  *utils.Config
	logger  log.Logger
	metrics *solarsystem.Metrics
	system  *solarsystem.SolarSystem
}

// NewPlanetariumClient creates a client holding an empty system built from config
func NewPlanetariumClient(config *utils.Config, logger log.Logger, metrics *solarsystem.Metrics) (*PlanetariumClient, error) {
	if config == nil {
		config = utils.DefaultConfig()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	client := &PlanetariumClient{
		config:  config,
		logger:  logger,
		metrics: metrics,
	}

	if err := client.Reset(); err != nil {
		return nil, fmt.Errorf("failed to create solar system: %w", err)
	}

	return client, nil
}

// System exposes the underlying solar system
func (c *PlanetariumClient) System() *solarsystem.SolarSystem {
	return c.system
}

// Reset replaces the system with a fresh one holding only the configured star
func (c *PlanetariumClient) Reset() error {
	star := c.config.Star
	system, err := solarsystem.NewSolarSystemXY(star.X, star.Y, star.Mass, c.config.SystemOptions(c.logger, c.metrics)...)
	if err != nil {
		return err
	}

	c.system = system
	return nil
}

// LoadScenario replaces the system with the one described by scenario.
// The current system is kept when the scenario cannot be built.
func (c *PlanetariumClient) LoadScenario(scenario *types.Scenario) error {
	star := types.BodySpec{
		X:    c.config.Star.X,
		Y:    c.config.Star.Y,
		Mass: c.config.Star.Mass,
	}
	opts := c.config.SystemOptions(c.logger, c.metrics)
	if scenario.Star != nil {
		star = *scenario.Star
		if star.ID != "" {
			opts = append(opts, solarsystem.WithStarIdentifier(star.ID))
		}
	}

	system, err := solarsystem.NewSolarSystemXY(star.X, star.Y, star.Mass, opts...)
	if err != nil {
		return err
	}

	for _, spec := range scenario.Planets {
		planet, err := addPlanet(system.Star(), spec.BodySpec)
		if err != nil {
			return err
		}
		for _, moonSpec := range spec.Moons {
			if _, err := addMoon(planet, moonSpec); err != nil {
				return err
			}
		}
	}

	c.system = system
	c.logger.Info("scenario loaded", "star", system.Star().Identifier(), "bodies", scenario.NumberOfBodies())
	return nil
}

func addPlanet(star *solarsystem.Star, spec types.BodySpec) (*solarsystem.Planet, error) {
	position := astromath.NewPosition(spec.X, spec.Y)
	if spec.ID == "" {
		return star.AddNewPlanet(position, spec.Mass)
	}
	return star.AddNamedPlanet(spec.ID, position, spec.Mass)
}

func addMoon(planet *solarsystem.Planet, spec types.BodySpec) (*solarsystem.Moon, error) {
	position := astromath.NewPosition(spec.X, spec.Y)
	if spec.ID == "" {
		return planet.AddNewMoon(position, spec.Mass)
	}
	return planet.AddNamedMoon(spec.ID, position, spec.Mass)
}

// AddPlanet adds a planet with a generated identifier
func (c *PlanetariumClient) AddPlanet(x, y float64, mass int64) (*solarsystem.Planet, error) {
	return addPlanet(c.system.Star(), types.BodySpec{X: x, Y: y, Mass: mass})
}

// AddNamedPlanet adds a planet with the given identifier
func (c *PlanetariumClient) AddNamedPlanet(identifier string, x, y float64, mass int64) (*solarsystem.Planet, error) {
	if identifier == "" {
		return nil, errorsmod.Wrap(solarsystem.ErrInvalidArgument, "identifier cannot be empty")
	}
	return addPlanet(c.system.Star(), types.BodySpec{ID: identifier, X: x, Y: y, Mass: mass})
}

// AddMoon adds a moon with a generated identifier to the planet planetID
func (c *PlanetariumClient) AddMoon(planetID string, x, y float64, mass int64) (*solarsystem.Moon, error) {
	planet, err := c.system.Star().FindPlanet(planetID)
	if err != nil {
		return nil, err
	}
	return addMoon(planet, types.BodySpec{X: x, Y: y, Mass: mass})
}

// AddNamedMoon adds a moon with the given identifier to the planet planetID
func (c *PlanetariumClient) AddNamedMoon(planetID, identifier string, x, y float64, mass int64) (*solarsystem.Moon, error) {
	if identifier == "" {
		return nil, errorsmod.Wrap(solarsystem.ErrInvalidArgument, "identifier cannot be empty")
	}
	planet, err := c.system.Star().FindPlanet(planetID)
	if err != nil {
		return nil, err
	}
	return addMoon(planet, types.BodySpec{ID: identifier, X: x, Y: y, Mass: mass})
}

// RemovePlanet removes a planet and its moons
func (c *PlanetariumClient) RemovePlanet(identifier string) (*solarsystem.Planet, error) {
	return c.system.Star().RemoveOldPlanet(identifier)
}

// RemoveMoon removes the moon identifier from whichever planet owns it
func (c *PlanetariumClient) RemoveMoon(identifier string) (*solarsystem.Moon, error) {
	body, err := c.system.FindCelestialBody(identifier)
	if err != nil {
		return nil, err
	}

	moon, ok := body.(*solarsystem.Moon)
	if !ok {
		return nil, errorsmod.Wrapf(solarsystem.ErrInvalidArgument, "%s is a %s, not a moon", identifier, body.Kind())
	}

	return moon.Planet().RemoveOldMoon(identifier)
}

// BodyInfo summarizes one celestial body
type BodyInfo struct {
	Identifier       string
	Kind             solarsystem.Kind
	Mass             int64
	RelativePosition astromath.Position
	Position         astromath.Position
	Parent           string
	// DistanceToParent is zero for the star
	DistanceToParent float64
	Children         []string
}

func (i BodyInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", i.Kind, i.Identifier)
	fmt.Fprintf(&b, "  mass:              %d\n", i.Mass)
	fmt.Fprintf(&b, "  position:          %s\n", i.Position)
	if i.Parent != "" {
		fmt.Fprintf(&b, "  relative position: %s\n", i.RelativePosition)
		fmt.Fprintf(&b, "  orbits:            %s (distance %.3f)\n", i.Parent, i.DistanceToParent)
	}
	if i.Kind != solarsystem.KindMoon {
		children := "none"
		if len(i.Children) > 0 {
			children = strings.Join(i.Children, ", ")
		}
		fmt.Fprintf(&b, "  satellites:        %s\n", children)
	}
	return b.String()
}

// Info describes the body identifier
func (c *PlanetariumClient) Info(identifier string) (*BodyInfo, error) {
	body, err := c.system.FindCelestialBody(identifier)
	if err != nil {
		return nil, err
	}

	info := &BodyInfo{
		Identifier:       body.Identifier(),
		Kind:             body.Kind(),
		Mass:             body.Mass(),
		RelativePosition: body.RelativePosition(),
		Position:         body.Position(),
	}
	if parent := body.Parent(); parent != nil {
		info.Parent = parent.Identifier()
	}

	switch b := body.(type) {
	case *solarsystem.Star:
		for _, planet := range b.Planets() {
			info.Children = append(info.Children, planet.Identifier())
		}
	case *solarsystem.Planet:
		info.DistanceToParent = b.DistanceToStar()
		for _, moon := range b.Moons() {
			info.Children = append(info.Children, moon.Identifier())
		}
	case *solarsystem.Moon:
		info.DistanceToParent = b.DistanceToPlanet()
	}

	return info, nil
}

// Tree lists every body, indented under its parent
func (c *PlanetariumClient) Tree() string {
	var b strings.Builder
	star := c.system.Star()
	fmt.Fprintf(&b, "%s\t\t\t%s\n", star.Identifier(), star.Position())

	planets := star.Planets()
	for i, planet := range planets {
		moonFormat := " |      |__ %s\t%s\n"
		if i == len(planets)-1 {
			moonFormat = "        |__ %s\t%s\n"
		}
		fmt.Fprintf(&b, " |__ %s\t\t%s\n", planet.Identifier(), planet.Position())
		for _, moon := range planet.Moons() {
			fmt.Fprintf(&b, moonFormat, moon.Identifier(), moon.Position())
		}
	}

	return b.String()
}

// CenterOfMass returns the mass-weighted center of the system
func (c *PlanetariumClient) CenterOfMass() astromath.Position {
	return c.system.CenterOfMass()
}

// Route returns the path between two bodies
func (c *PlanetariumClient) Route(from, to string) (solarsystem.Path, error) {
	return c.system.FindPath(from, to)
}

// Collisions returns every pair of overlapping bodies
func (c *PlanetariumClient) Collisions() []solarsystem.Collision {
	return c.system.DetectCollisions()
}

// GenerateRandom adds planets with moonsPerPlanet moons each at random positions.
// The same seed always produces the same bodies. Generated identifiers already
// taken by named bodies are skipped. Either every body is added or none is.
func (c *PlanetariumClient) GenerateRandom(planets, moonsPerPlanet int, seed int64) ([]solarsystem.CelestialBody, error) {
	if planets < 0 || moonsPerPlanet < 0 {
		return nil, errorsmod.Wrapf(solarsystem.ErrInvalidArgument, "cannot generate %d planets with %d moons", planets, moonsPerPlanet)
	}

	star := c.system.Star()
	if free := star.MaxPlanets() - star.NumberOfPlanets(); planets > free {
		return nil, errorsmod.Wrapf(solarsystem.ErrCapacityExceeded, "at most %d more planets can be added", free)
	}
	if limit := c.system.Limits().MaxMoons; moonsPerPlanet > limit {
		return nil, errorsmod.Wrapf(solarsystem.ErrCapacityExceeded, "at most %d moons per planet are allowed", limit)
	}

	rng := rand.New(rand.NewSource(seed))
	generated := make([]solarsystem.CelestialBody, 0, planets*(moonsPerPlanet+1))
	var added []*solarsystem.Planet
	for i := 0; i < planets; i++ {
		position, mass := randomPosition(rng, planetSpread), randomMass(rng)
		planet, err := retryTaken(func() (*solarsystem.Planet, error) {
			return star.AddNewPlanet(position, mass)
		})
		if err != nil {
			c.rollback(added)
			return nil, err
		}
		added = append(added, planet)
		generated = append(generated, planet)

		for j := 0; j < moonsPerPlanet; j++ {
			position, mass := randomPosition(rng, moonSpread), randomMass(rng)
			moon, err := retryTaken(func() (*solarsystem.Moon, error) {
				return planet.AddNewMoon(position, mass)
			})
			if err != nil {
				c.rollback(added)
				return nil, err
			}
			generated = append(generated, moon)
		}
	}

	c.logger.Info("random bodies generated", "planets", planets, "moons_per_planet", moonsPerPlanet, "seed", seed)
	return generated, nil
}

// retryTaken repeats an auto-identifier add while the generated identifier is
// taken. Every rejected attempt uses up an ordinal, and only a finite number of
// bodies exist, so the loop ends.
func retryTaken[T any](add func() (T, error)) (T, error) {
	for {
		body, err := add()
		if !errorsmod.IsOf(err, solarsystem.ErrDuplicateIdentifier) {
			return body, err
		}
	}
}

// rollback removes planets added by an interrupted generation, moons included
func (c *PlanetariumClient) rollback(planets []*solarsystem.Planet) {
	for _, planet := range planets {
		planet.RemoveFromSystem()
	}
	c.logger.Error("random generation rolled back", "planets", len(planets))
}

func randomPosition(rng *rand.Rand, spread float64) astromath.Position {
	return astromath.NewPosition((rng.Float64()*2-1)*spread, (rng.Float64()*2-1)*spread)
}

func randomMass(rng *rand.Rand) int64 {
	return rng.Int63n(maxGeneratedMass) + 1
}
