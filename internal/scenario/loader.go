package scenario

import (
	"fmt"
	"os"
	"path/filepath"
)

// Load resolves a scenario by id.
// Search order: customPath -> ~/.orbitarium/scenarios/<id>.yaml ->
// ./scenarios/<id>.yaml -> registered built-in.
func Load(id, customPath string) (*Scenario, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("scenario: cannot read %s: %w", customPath, err)
		}
		return Parse(data)
	}

	if userPath := userScenarioPath(id + ".yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if s, err := Parse(data); err == nil {
				return s, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("scenarios", id+".yaml")); err == nil {
		if s, err := Parse(data); err == nil {
			return s, nil
		}
	}

	if s, ok := Get(id); ok {
		return s, nil
	}
	return nil, fmt.Errorf("scenario: unknown scenario %q", id)
}

// userScenarioPath returns the user override path, or empty if the home
// directory is unavailable.
func userScenarioPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbitarium", "scenarios", filename)
}
