// Package registry provides a global registry of theme sources.
// Sources register themselves in init() functions, allowing the CLI to pick
// one by name without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/quiz-runner/internal/theme"
)

// Options carries settings a source factory may need.
type Options struct {
	Seed  int64  // Seed for procedural sources
	URL   string // Endpoint for remote sources
	Token string // Bearer token for remote sources
}

// Source is a configured theme source. Exactly one of Rotation or Generator
// is set: rotations are applied synchronously, generators asynchronously.
type Source struct {
	Rotation  theme.Rotation
	Generator theme.Generator
}

// IsAsync reports whether the source must be resolved off the tick loop.
func (s Source) IsAsync() bool {
	return s.Generator != nil
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	ID          string
	Description string
}

// Factory builds a Source from options.
type Factory func(opts Options) (Source, error)

// ErrUnknownSource is returned by Create for unregistered IDs.
var ErrUnknownSource = errors.New("registry: unknown theme source")

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a source factory to the registry.
// Panics if a source with the same ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: theme source %q already registered", id))
	}

	factories[id] = f
	descriptions[id] = description
}

// List returns information about all registered sources, sorted by ID.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SourceInfo{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds the source registered under id.
func Create(id string, opts Options) (Source, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return Source{}, fmt.Errorf("%w %q", ErrUnknownSource, id)
	}

	src, err := f(opts)
	if err != nil {
		return Source{}, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return src, nil
}

// Exists checks if a source with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
