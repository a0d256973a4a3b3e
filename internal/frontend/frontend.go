package frontend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/log"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

// Frontend hosts the game in a terminal. It owns the frame loop and input,
// driving the director until the player quits.
type Frontend interface {
	// Name returns the unique identifier (kebab-case recommended).
	Name() string

	// Description is shown in flag help and listings.
	Description() string

	// Commands returns aliases that select this frontend (e.g., ["tui", "tea"]).
	Commands() []string

	// Launch runs the frame loop. It returns when the player quits.
	Launch(d *engine.Director) error
}

type Registry struct {
	mu               sync.RWMutex
	frontends        map[string]Frontend
	commandMap       map[string]Frontend
	orderedFrontends []Frontend
}

func NewRegistry() *Registry {
	return &Registry{
		frontends:        make(map[string]Frontend),
		commandMap:       make(map[string]Frontend),
		orderedFrontends: make([]Frontend, 0),
	}
}

func (r *Registry) Register(f Frontend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.frontends[f.Name()]; exists {
		log.G().Warn("frontend already registered", "frontend", f.Name())
	}

	r.frontends[f.Name()] = f
	r.orderedFrontends = append(r.orderedFrontends, f)

	for _, cmd := range f.Commands() {
		if existing, exists := r.commandMap[cmd]; exists {
			log.G().Warn("command collision",
				"command", cmd,
				"existing_frontend", existing.Name(),
				"new_frontend", f.Name())
		}
		r.commandMap[cmd] = f
	}
}

func (r *Registry) Get(name string) (Frontend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.frontends[name]
	return f, ok
}

func (r *Registry) GetByCommand(cmd string) (Frontend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.commandMap[cmd]
	return f, ok
}

// Resolve finds a frontend by name or alias.
func (r *Registry) Resolve(nameOrCommand string) (Frontend, error) {
	if f, ok := r.Get(nameOrCommand); ok {
		return f, nil
	}
	if f, ok := r.GetByCommand(nameOrCommand); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFrontend, nameOrCommand)
}

func (r *Registry) List() []Frontend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.orderedFrontends
}

// CommandSuggestions returns every alias, sorted.
func (r *Registry) CommandSuggestions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suggestions := lo.Keys(r.commandMap)
	sort.Strings(suggestions)
	return suggestions
}
