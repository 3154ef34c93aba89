// Package scene provides a registry of named animation scenes.
// Scenes register themselves in init() functions, so the CLI and the TUI can
// list and build them without hardcoded dependencies.
package scene

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-motion/internal/anim"
	"github.com/vovakirdan/tui-motion/internal/clock"
	"github.com/vovakirdan/tui-motion/internal/ui"
)

// Scene wires listeners onto a View so that external writes start animations.
type Scene interface {
	// ID returns a unique identifier (e.g., "width", "fade").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Build registers the scene's listeners on v. Animations started by
	// those listeners are handed to env.Director.
	Build(v *ui.View, env Env)

	// Trigger performs the external write for the step-th user action.
	// Steps start at 0.
	Trigger(v *ui.View, step int)
}

// Env is what a scene needs to build animations.
type Env struct {
	Director anim.Director
	Clock    clock.Clock
	Duration time.Duration
	Logger   *log.Logger
	// Targets overrides the scene's default trigger values when non-empty.
	Targets []float64
}

// Info contains metadata about a registered scene.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("scene: %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered scenes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a scene by its ID.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q", id)
	}
	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
