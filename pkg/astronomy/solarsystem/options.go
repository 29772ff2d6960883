package solarsystem

import (
	"math"

	"cosmossdk.io/log"
)

const (
	// MaxNumberOfPlanets is the default number of planets a star can own
	MaxNumberOfPlanets = 100
	// MaxNumberOfMoons is the default number of moons a planet can own
	MaxNumberOfMoons = 100

	// DefaultStarIdentifier is used when no identifier is given for the star
	DefaultStarIdentifier = "S1"
	// DefaultRadiusScale multiplies the cube root of the mass in DefaultRadius
	DefaultRadiusScale = 1.0
)

// RadiusFunc derives the collision radius of a body from its mass
type RadiusFunc func(mass int64) float64

// DefaultRadius treats every body as having the same density: the radius grows
// with the cube root of the mass.
func DefaultRadius(mass int64) float64 {
	return ScaledRadius(DefaultRadiusScale)(mass)
}

// ScaledRadius returns a RadiusFunc computing scale * cbrt(mass)
func ScaledRadius(scale float64) RadiusFunc {
	return func(mass int64) float64 {
		if mass <= 0 {
			return 0
		}
		return scale * math.Cbrt(float64(mass))
	}
}

// Limits bounds the size of the child collections
type Limits struct {
	MaxPlanets int
	MaxMoons   int
}

// DefaultLimits returns the package-wide capacity limits
func DefaultLimits() Limits {
	return Limits{
		MaxPlanets: MaxNumberOfPlanets,
		MaxMoons:   MaxNumberOfMoons,
	}
}

type options struct {
	starIdentifier string
	limits         Limits
	radius         RadiusFunc
	logger         log.Logger
	metrics        *Metrics
}

func defaultOptions() options {
	return options{
		starIdentifier: DefaultStarIdentifier,
		limits:         DefaultLimits(),
		radius:         DefaultRadius,
		logger:         log.NewNopLogger(),
	}
}

// Option configures a SolarSystem at construction time
type Option func(*options)

// WithStarIdentifier names the star of the system
func WithStarIdentifier(identifier string) Option {
	return func(o *options) { o.starIdentifier = identifier }
}

// WithLimits overrides the capacity limits. Non-positive values keep the default.
func WithLimits(limits Limits) Option {
	return func(o *options) {
		if limits.MaxPlanets > 0 {
			o.limits.MaxPlanets = limits.MaxPlanets
		}
		if limits.MaxMoons > 0 {
			o.limits.MaxMoons = limits.MaxMoons
		}
	}
}

// WithRadiusFunc sets how collision radii are derived from masses
func WithRadiusFunc(radius RadiusFunc) Option {
	return func(o *options) {
		if radius != nil {
			o.radius = radius
		}
	}
}

// WithLogger sets the logger used for structural edits
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics records edits and queries on the given collectors
func WithMetrics(metrics *Metrics) Option {
	return func(o *options) { o.metrics = metrics }
}
