// Package speech provides pronunciation backends for prompts. Backends
// register with the registry package; Resolve picks one by name.
package speech

import (
	"context"
	"fmt"

	"github.com/vovakirdan/word-moles/internal/registry"
)

// Auto selects the first available command voice, falling back to Silent.
const Auto = "auto"

// autoOrder is the preference order used by Auto.
var autoOrder = []string{"say", "espeak-ng", "espeak"}

func init() {
	registry.Register("silent", func() registry.Voice { return Silent{} })
	registry.Register("say", func() registry.Voice { return newSay() })
	registry.Register("espeak-ng", func() registry.Voice { return newESpeak("espeak-ng") })
	registry.Register("espeak", func() registry.Voice { return newESpeak("espeak") })
}

// Resolve returns the voice registered as id, or the best available one
// for Auto. An unavailable voice is an error.
func Resolve(id string) (registry.Voice, error) {
	if id == "" || id == Auto {
		for _, name := range autoOrder {
			if v, err := registry.Create(name); err == nil && v.Available() {
				return v, nil
			}
		}
		return Silent{}, nil
	}

	v, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("speech: %w", err)
	}
	if !v.Available() {
		return nil, fmt.Errorf("speech: voice %q is not available on this system", id)
	}
	return v, nil
}

// Silent discards every prompt.
type Silent struct{}

func (Silent) Title() string   { return "Silent" }
func (Silent) Available() bool { return true }

func (Silent) Pronounce(ctx context.Context, _ string, _ bool) error {
	return ctx.Err()
}
