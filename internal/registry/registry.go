// Package registry is the catalog of playable maze variants. Each
// variant registers a factory from its package init(), so the CLI, the
// menu, and the SSH server discover mazes without importing them by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-chomp/internal/core"
)

// Game is the contract between a maze simulation and the platform. An
// implementation is pure simulation state; the platform owns timing,
// key mapping, and pushing the rendered screen to a terminal.
type Game interface {
	// ID is the stable variant identifier used by the CLI and the
	// score tables (e.g. "chomp-arena").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh round from the given runtime configuration.
	// Also called for a full restart after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation one fixed tick, consuming the
	// actions collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State reports score and round status.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh instance of a variant.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a variant under its ID. Called from init(); a duplicate
// ID is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}
	factories[id] = f
}

// List returns every registered variant, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(factories))
	for id, f := range factories {
		infos = append(infos, GameInfo{ID: id, Title: f().Title()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create instantiates the variant with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown maze %q", id)
	}
	return f(), nil
}

// Exists reports whether the ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
