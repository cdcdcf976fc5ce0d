package scenario

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered scenario.
type Info struct {
	ID          string
	Name        string
	Description string
}

var (
	mu       sync.RWMutex
	builtins = make(map[string]*Scenario)
)

// Register adds a built-in scenario to the registry. Called from init();
// panics on a duplicate id.
func Register(s *Scenario) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := builtins[s.ID]; exists {
		panic(fmt.Sprintf("scenario: %q already registered", s.ID))
	}
	builtins[s.ID] = s
}

// List returns metadata for all built-in scenarios, sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(builtins))
	for _, s := range builtins {
		result = append(result, Info{ID: s.ID, Name: s.Name, Description: s.Description})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns a copy of the registered scenario with the given id.
func Get(id string) (*Scenario, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := builtins[id]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Exists checks whether a built-in scenario with the given id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := builtins[id]
	return ok
}
