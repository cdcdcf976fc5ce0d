// Package scenario defines the YAML model for initial conditions and turns
// it into a populated physics.Universe. Built-in scenarios register
// themselves at init time; user scenarios come from YAML files or the
// scenario library in storage.
package scenario

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"orbitarium/internal/physics"
)

// BodySpec describes one body of a scenario.
type BodySpec struct {
	Name     string     `yaml:"name"`
	Mass     float64    `yaml:"mass"`   // kg
	Radius   float64    `yaml:"radius"` // m, display only
	Position [2]float64 `yaml:"position"`
	Velocity [2]float64 `yaml:"velocity"`
	Color    string     `yaml:"color,omitempty"`
	// AutoOrbit replaces the body's velocity with the circular orbital
	// speed around the scenario's most massive body.
	AutoOrbit bool `yaml:"auto_orbit,omitempty"`
}

// Scenario is a named set of initial conditions.
type Scenario struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	TimeScale   float64    `yaml:"time_scale,omitempty"` // simulated s per real s, default 1
	Bodies      []BodySpec `yaml:"bodies"`
}

// Parse decodes and validates a YAML scenario definition.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: cannot parse definition: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario shape. Per-body mass/radius constraints are
// enforced again by physics.NewBody during Build; checking here gives
// file-level errors before a universe is ever constructed.
func (s *Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario: missing id")
	}
	if len(s.Bodies) == 0 {
		return fmt.Errorf("scenario %q: needs at least one body", s.ID)
	}
	for i, b := range s.Bodies {
		if !(b.Mass > 0) {
			return fmt.Errorf("scenario %q: body %d (%s): mass %v must be > 0", s.ID, i, b.Name, b.Mass)
		}
		if !(b.Radius >= 0) {
			return fmt.Errorf("scenario %q: body %d (%s): radius %v must be >= 0", s.ID, i, b.Name, b.Radius)
		}
	}
	return nil
}

// Clone returns a deep copy, so callers can adjust a registered scenario
// without mutating the shared built-in.
func (s *Scenario) Clone() *Scenario {
	c := *s
	c.Bodies = append([]BodySpec(nil), s.Bodies...)
	return &c
}

// Definition renders the scenario back to YAML, the form the scenario
// library stores.
func (s *Scenario) Definition() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: cannot marshal: %w", s.ID, err)
	}
	return data, nil
}

// Build validates the scenario and constructs a universe from it. Bodies
// flagged auto_orbit get the circular orbital speed v = sqrt(G·M/r) around
// the most massive body, perpendicular to the separation vector.
func (s *Scenario) Build() (*physics.Universe, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	central := 0
	for i, b := range s.Bodies {
		if b.Mass > s.Bodies[central].Mass {
			central = i
		}
	}

	u := physics.NewUniverse()
	if s.TimeScale != 0 {
		u.SetTimeScale(s.TimeScale)
	}

	for i, spec := range s.Bodies {
		vel := physics.Vec2{X: spec.Velocity[0], Y: spec.Velocity[1]}
		if spec.AutoOrbit && i != central {
			vel = orbitalVelocity(s.Bodies[central], spec)
		}
		b, err := physics.NewBody(spec.Mass, spec.Radius,
			physics.Vec2{X: spec.Position[0], Y: spec.Position[1]}, vel)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: body %d (%s): %w", s.ID, i, spec.Name, err)
		}
		b.Name = spec.Name
		if err := u.Add(b); err != nil {
			return nil, fmt.Errorf("scenario %q: body %d (%s): %w", s.ID, i, spec.Name, err)
		}
	}
	return u, nil
}

// orbitalVelocity returns the circular orbital velocity of spec around
// central, tangential to the separation vector, on top of the central
// body's own velocity.
func orbitalVelocity(central, spec BodySpec) physics.Vec2 {
	dx := spec.Position[0] - central.Position[0]
	dy := spec.Position[1] - central.Position[1]
	r := math.Hypot(dx, dy)
	v := math.Sqrt(physics.G * central.Mass / r)
	return physics.Vec2{
		X: central.Velocity[0] - dy/r*v,
		Y: central.Velocity[1] + dx/r*v,
	}
}
