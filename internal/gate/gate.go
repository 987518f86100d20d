// Package gate decides which vocabulary scopes are selectable.
package gate

import (
	"github.com/vovakirdan/word-moles/internal/learning"
	"github.com/vovakirdan/word-moles/internal/vocab"
)

// IsLocked reports whether the scope at index is locked. The first scope
// and everything up to the starting scope are always open; any other scope
// opens once at least index scopes are completed.
func IsLocked(index, completedScopes, startIndex int) bool {
	return index > 0 && completedScopes < index && index > startIndex
}

// Status describes one scope for the scope picker.
type Status struct {
	Name      string
	Index     int
	Size      int
	Mastered  int
	Completed bool
	Locked    bool
}

// Evaluate returns the status of every catalog scope in order. An unknown
// startingScope behaves like the first scope.
func Evaluate(catalog *vocab.Catalog, mastery *learning.MasteryStore, startingScope string) []Status {
	sizes := catalog.Sizes()
	completed := mastery.CountCompletedScopes(sizes)

	start := catalog.Index(startingScope)
	if start < 0 {
		start = 0
	}

	scopes := catalog.Scopes()
	out := make([]Status, len(scopes))
	for i, name := range scopes {
		out[i] = Status{
			Name:      name,
			Index:     i,
			Size:      sizes[name],
			Mastered:  mastery.CountInScope(name),
			Completed: mastery.IsScopeCompleted(name, sizes[name]),
			Locked:    IsLocked(i, completed, start),
		}
	}
	return out
}

// Unlocked reports whether scope may be played.
func Unlocked(catalog *vocab.Catalog, mastery *learning.MasteryStore, startingScope, scope string) bool {
	for _, st := range Evaluate(catalog, mastery, startingScope) {
		if st.Name == scope {
			return !st.Locked
		}
	}
	return false
}
