package types

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a YAML description of a solar system used to seed a single run
type Scenario struct {
	Star    *BodySpec    `yaml:"star,omitempty"`
	Planets []PlanetSpec `yaml:"planets,omitempty"`
}

// BodySpec describes one body. An empty ID lets the system generate one.
// Positions are relative to the parent body.
type BodySpec struct {
	ID   string  `yaml:"id,omitempty"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Mass int64   `yaml:"mass"`
}

// PlanetSpec describes a planet together with its moons
type PlanetSpec struct {
	BodySpec `yaml:",inline"`
	Moons    []BodySpec `yaml:"moons,omitempty"`
}

// NumberOfBodies counts the planets and moons of the scenario, star excluded
func (s *Scenario) NumberOfBodies() int {
	n := len(s.Planets)
	for _, p := range s.Planets {
		n += len(p.Moons)
	}
	return n
}

// LoadScenario reads a scenario file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return scenario, nil
}

// ParseScenario decodes a scenario document, rejecting unknown keys
func ParseScenario(r io.Reader) (*Scenario, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var scenario Scenario
	if err := decoder.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return &scenario, nil
		}
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	return &scenario, nil
}
