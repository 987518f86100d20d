// Package round generates whack-a-mole questions from a vocabulary pool.
package round

import (
	"errors"

	"github.com/vovakirdan/word-moles/internal/vocab"
)

const (
	// MaxDecoys is the number of wrong options a round aims for.
	MaxDecoys = 3
	// HoleCount is the number of holes options can surface from.
	HoleCount = 6
)

// ErrEmptyPool is returned when a round is requested from an empty pool.
// Callers are expected to end the session instead.
var ErrEmptyPool = errors.New("round: empty term pool")

// Direction says which side of an entry is shown and which is answered.
type Direction int

const (
	// AskForeign shows the native term and asks for the foreign one.
	AskForeign Direction = iota
	// AskNative shows the foreign term and asks for the native one.
	AskNative
)

func (d Direction) String() string {
	switch d {
	case AskForeign:
		return "ask-foreign"
	case AskNative:
		return "ask-native"
	default:
		return "unknown"
	}
}

// prompt returns the shown text of e.
func (d Direction) prompt(e vocab.Entry) string {
	if d == AskNative {
		return e.Secondary
	}
	return e.Primary
}

// answer returns the expected text of e.
func (d Direction) answer(e vocab.Entry) string {
	if d == AskNative {
		return e.Primary
	}
	return e.Secondary
}

// decoys returns the authored distractors of e for this direction.
func (d Direction) decoys(e vocab.Entry) []string {
	if d == AskNative {
		return e.PrimaryDistractors
	}
	return e.SecondaryDistractors
}

// Option is one whackable mole.
type Option struct {
	Text      string
	IsCorrect bool
	// Source is the entry the text was taken from. Authored decoys share
	// the asked entry as their source.
	Source vocab.Entry
	// Hole is the 0-based hole the option pops out of.
	Hole int
}

// Round is one question.
type Round struct {
	Prompt    string
	Direction Direction
	// Entry is the asked term.
	Entry   vocab.Entry
	Options []Option
}

// PromptForeign reports whether the prompt is in the foreign language, which
// selects the voice used to pronounce it.
func (r Round) PromptForeign() bool {
	return r.Direction == AskNative
}

// Answer returns the correct option text.
func (r Round) Answer() string {
	return r.Direction.answer(r.Entry)
}

// OptionAt returns the option in hole, if any.
func (r Round) OptionAt(hole int) (Option, bool) {
	for _, opt := range r.Options {
		if opt.Hole == hole {
			return opt, true
		}
	}
	return Option{}, false
}
