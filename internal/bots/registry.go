// Package bots provides a global registry for cannon decision functions.
// Bots register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package bots

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cannonball/internal/engine"
)

// Info contains metadata about a registered bot.
type Info struct {
	Name        string
	Description string
}

// Factory creates a new decider instance. Bots that randomize receive their
// entropy through the seed so a match stays replayable.
type Factory func(rules engine.Rules, seed int64) engine.Decider

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a bot factory to the registry.
// Typically called from a bot's init() function.
// Panics if a bot with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("bots: bot %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered bots, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new decider by bot name.
// Returns an error if the name is not registered.
func Create(name string, rules engine.Rules, seed int64) (engine.Decider, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("bots: unknown bot %q", name)
	}

	return f(rules, seed), nil
}

// Exists checks if a bot with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
