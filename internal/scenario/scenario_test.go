package scenario

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"orbitarium/internal/physics"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"earth-moon", "inner-system", "binary-pair"} {
		if !Exists(id) {
			t.Errorf("built-in scenario %q should be registered", id)
		}
	}

	infos := List()
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List() should be sorted by id: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestGetReturnsCopy(t *testing.T) {
	a, ok := Get("earth-moon")
	if !ok {
		t.Fatal("earth-moon should exist")
	}
	a.Bodies[0].Mass = 1

	b, _ := Get("earth-moon")
	if b.Bodies[0].Mass == 1 {
		t.Error("mutating a Get() result must not affect the registered scenario")
	}
}

func TestParseRejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"not yaml", "{{{"},
		{"missing id", "name: x\nbodies:\n  - {name: a, mass: 1}"},
		{"no bodies", "id: x\nname: x\nbodies: []"},
		{"zero mass", "id: x\nbodies:\n  - {name: a, mass: 0}"},
		{"negative radius", "id: x\nbodies:\n  - {name: a, mass: 1, radius: -2}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("Parse should reject %s", tc.name)
			}
		})
	}
}

func TestBuildEarthMoon(t *testing.T) {
	s, ok := Get("earth-moon")
	if !ok {
		t.Fatal("earth-moon should exist")
	}

	u, err := s.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	bodies := u.Bodies()
	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}
	if bodies[0].Name != "Earth" || bodies[1].Name != "Moon" {
		t.Errorf("bodies out of order: %q, %q", bodies[0].Name, bodies[1].Name)
	}
	if bodies[0].ID != 0 || bodies[1].ID != 1 {
		t.Errorf("ids should follow insertion order, got %d, %d", bodies[0].ID, bodies[1].ID)
	}
	if u.TimeScale() != 86400 {
		t.Errorf("time scale should come from the scenario, got %v", u.TimeScale())
	}
}

func TestBuildAutoOrbit(t *testing.T) {
	s := &Scenario{
		ID: "t",
		Bodies: []BodySpec{
			{Name: "Star", Mass: 1.989e30, Position: [2]float64{0, 0}},
			{Name: "Planet", Mass: 5.9722e24, Position: [2]float64{1.496e11, 0}, AutoOrbit: true},
		},
	}

	u, err := s.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	planet := u.Bodies()[1]
	want := math.Sqrt(physics.G * 1.989e30 / 1.496e11) // ~29.8 km/s
	got := planet.Vel.Len()
	if rel := math.Abs(got-want) / want; rel > 1e-12 {
		t.Errorf("auto_orbit speed off by %v: got %v, want %v", rel, got, want)
	}
	// Tangential: no radial component along +x.
	if planet.Vel.X != 0 {
		t.Errorf("auto_orbit velocity should be perpendicular to the separation, vel = %v", planet.Vel)
	}
	// Default time scale is real time.
	if u.TimeScale() != 1 {
		t.Errorf("default time scale should be 1, got %v", u.TimeScale())
	}
}

func TestBuildRejectsCoincidentBodies(t *testing.T) {
	s := &Scenario{
		ID: "t",
		Bodies: []BodySpec{
			{Name: "A", Mass: 1e24},
			{Name: "B", Mass: 1e24},
		},
	}
	if _, err := s.Build(); err == nil {
		t.Error("two bodies at the same position should fail to build")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	def := []byte("id: custom\nname: Custom\nbodies:\n  - {name: a, mass: 1.5, position: [1, 2]}\n")
	if err := os.WriteFile(path, def, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := Load("ignored", path)
	if err != nil {
		t.Fatalf("Load() with explicit path failed: %v", err)
	}
	if s.ID != "custom" {
		t.Errorf("explicit path should win, got scenario %q", s.ID)
	}

	if _, err := Load("no-such-scenario", ""); err == nil {
		t.Error("unknown scenario id should fail")
	}

	builtin, err := Load("binary-pair", "")
	if err != nil {
		t.Fatalf("Load() of built-in failed: %v", err)
	}
	if builtin.ID != "binary-pair" {
		t.Errorf("expected built-in fallback, got %q", builtin.ID)
	}
}

func TestDefinitionRoundTrip(t *testing.T) {
	s, _ := Get("earth-moon")
	data, err := s.Definition()
	if err != nil {
		t.Fatalf("Definition() failed: %v", err)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() of rendered definition failed: %v", err)
	}
	if back.ID != s.ID || len(back.Bodies) != len(s.Bodies) {
		t.Errorf("round trip lost data: %+v", back)
	}
}
