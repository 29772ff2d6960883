package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/planetarium/pkg/astronomy/solarsystem"
)

const (
	configDirName  = ".planetarium"
	configFileName = "config"
	envPrefix      = "PLANETARIUM"
)

// Config represents the planetarium configuration
type Config struct {
	Star      StarConfig      `yaml:"star" mapstructure:"star"`
	Limits    LimitsConfig    `yaml:"limits" mapstructure:"limits"`
	Collision CollisionConfig `yaml:"collision" mapstructure:"collision"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Metrics   MetricsConfig   `yaml:"metrics" mapstructure:"metrics"`
}

// StarConfig describes the star every system starts from
type StarConfig struct {
	Identifier string  `yaml:"identifier" mapstructure:"identifier"`
	X          float64 `yaml:"x" mapstructure:"x"`
	Y          float64 `yaml:"y" mapstructure:"y"`
	Mass       int64   `yaml:"mass" mapstructure:"mass"`
}

// LimitsConfig contains the capacity limits of the hierarchy
type LimitsConfig struct {
	MaxPlanets int `yaml:"max_planets" mapstructure:"max_planets"`
	MaxMoons   int `yaml:"max_moons" mapstructure:"max_moons"`
}

// CollisionConfig tunes the collision radius derived from the mass
type CollisionConfig struct {
	RadiusScale float64 `yaml:"radius_scale" mapstructure:"radius_scale"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// MetricsConfig contains the prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Addr    string `yaml:"addr" mapstructure:"addr"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Star: StarConfig{
			Identifier: solarsystem.DefaultStarIdentifier,
			X:          0,
			Y:          0,
			Mass:       3,
		},
		Limits: LimitsConfig{
			MaxPlanets: solarsystem.MaxNumberOfPlanets,
			MaxMoons:   solarsystem.MaxNumberOfMoons,
		},
		Collision: CollisionConfig{
			RadiusScale: solarsystem.DefaultRadiusScale,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    ":9090",
		},
	}
}

// LoadConfig loads configuration from path, or searches $HOME/.planetarium, the
// working directory and ./configs when path is empty. Environment variables such
// as PLANETARIUM_STAR_MASS override file values. A missing config file is not an
// error when searching: the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDirName))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper, config *Config) {
	v.SetDefault("star.identifier", config.Star.Identifier)
	v.SetDefault("star.x", config.Star.X)
	v.SetDefault("star.y", config.Star.Y)
	v.SetDefault("star.mass", config.Star.Mass)
	v.SetDefault("limits.max_planets", config.Limits.MaxPlanets)
	v.SetDefault("limits.max_moons", config.Limits.MaxMoons)
	v.SetDefault("collision.radius_scale", config.Collision.RadiusScale)
	v.SetDefault("log.level", config.Log.Level)
	v.SetDefault("log.format", config.Log.Format)
	v.SetDefault("metrics.enabled", config.Metrics.Enabled)
	v.SetDefault("metrics.addr", config.Metrics.Addr)
}

// SaveConfig saves configuration to path, or to the default location when path is empty
func SaveConfig(config *Config, path string) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if path == "" {
		var err error
		if path, err = GetConfigPath(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Star.Identifier) == "" {
		return fmt.Errorf("star identifier cannot be empty")
	}

	if config.Star.Mass < 0 {
		return fmt.Errorf("star mass must be non-negative")
	}

	if config.Limits.MaxPlanets <= 0 || config.Limits.MaxMoons <= 0 {
		return fmt.Errorf("limits must be positive")
	}

	if config.Collision.RadiusScale <= 0 {
		return fmt.Errorf("collision radius scale must be positive")
	}

	if _, err := zerolog.ParseLevel(config.Log.Level); err != nil || config.Log.Level == "" {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	switch config.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", config.Log.Format)
	}

	if config.Metrics.Enabled && config.Metrics.Addr == "" {
		return fmt.Errorf("metrics address must be set when metrics are enabled")
	}

	return nil
}

// GetConfigPath returns the path to the default config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configDirName, configFileName+".yaml"), nil
}

// SystemOptions converts the configuration into solar system options
func (c *Config) SystemOptions(logger log.Logger, metrics *solarsystem.Metrics) []solarsystem.Option {
	return []solarsystem.Option{
		solarsystem.WithStarIdentifier(c.Star.Identifier),
		solarsystem.WithLimits(solarsystem.Limits{
			MaxPlanets: c.Limits.MaxPlanets,
			MaxMoons:   c.Limits.MaxMoons,
		}),
		solarsystem.WithRadiusFunc(solarsystem.ScaledRadius(c.Collision.RadiusScale)),
		solarsystem.WithLogger(logger),
		solarsystem.WithMetrics(metrics),
	}
}
