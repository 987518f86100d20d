// Package registry provides a global registry for speech backends.
// Backends register themselves in init() functions, allowing the CLI
// to list and pick a voice by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Voice is a speech backend.
type Voice interface {
	// Title returns a human-readable name for display (e.g., "eSpeak NG").
	Title() string

	// Available reports whether the backend can run on this machine,
	// e.g. whether its binary is on PATH.
	Available() bool

	// Pronounce speaks text, in the foreign-language voice when foreign is
	// set. A new call cancels the utterance in flight. It returns when
	// playback ends, fails or ctx is done.
	Pronounce(ctx context.Context, text string, foreign bool) error
}

// VoiceInfo contains metadata about a registered voice.
type VoiceInfo struct {
	ID        string
	Title     string
	Available bool
}

// Factory is a function that creates a new instance of a voice.
type Factory func() Voice

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a voice factory to the registry.
// Panics if a voice with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: voice %q already registered", id))
	}
	factories[id] = f
}

// List returns information about all registered voices, sorted by ID.
func List() []VoiceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VoiceInfo, 0, len(factories))
	for id, f := range factories {
		v := f()
		result = append(result, VoiceInfo{
			ID:        id,
			Title:     v.Title(),
			Available: v.Available(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new voice by its ID.
func Create(id string) (Voice, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown voice %q", id)
	}
	return f(), nil
}

// Exists checks if a voice with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
