// Package registry maps game ids to factories. Games register in init(),
// so hosts (the CLI, the SSH server) can create any game by name without
// importing its package beyond a blank import.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Game is what a host drives: fixed ticks in, a screen buffer out.
// Games never touch Bubble Tea; the platform maps keys to actions and
// schedules ticks.
type Game interface {
	// ID is the registry key, e.g. "breakout".
	ID() string

	// Title is the display name, e.g. "Breakout (Demo)".
	Title() string

	// Reset starts a new game. Called before the first Step and may be
	// called again at any time.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with the actions
	// triggered since the previous one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst, whatever its size.
	Render(dst *core.Screen)

	// State reports score, lives and phase without advancing.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Options carries what the host passes to every game it creates.
// The zero value is valid: no logging, configuration from the default
// search path, no difficulty preset.
type Options struct {
	Logger     *log.Logger
	ConfigPath string
	Difficulty string
}

// Factory creates a game. It must be cheap; Register calls it once to
// read the title.
type Factory func(opts Options) Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id.
// Panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f(Options{}).Title()}
}

// List returns every registered game, sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(opts), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
