// Package settings persists the player's preferences in the key-value store.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/word-moles/internal/gate"
	"github.com/vovakirdan/word-moles/internal/storage"
	"github.com/vovakirdan/word-moles/internal/vocab"
	"github.com/vovakirdan/word-moles/pkg/validator"
)

// DurationStep is the granularity of the session length in seconds.
const DurationStep = 30

var (
	// ErrChallengeFailed is returned when the guard question was answered
	// wrongly.
	ErrChallengeFailed = errors.New("settings: challenge answer is wrong")
	// ErrUnknownScope is returned for a scope the catalog does not have.
	ErrUnknownScope = errors.New("settings: unknown scope")
)

// Mole styles and background music types.
var (
	MoleStyles = []string{"default", "cute", "cool"}
	BGMTypes   = []string{"happy", "calm", "energetic", "dreamy"}
)

// Settings are the player's preferences.
type Settings struct {
	GameDuration  int    `json:"gameDuration" validate:"min=30,max=180"`
	BGMVolume     int    `json:"bgmVolume" validate:"min=0,max=100"`
	SFXVolume     int    `json:"sfxVolume" validate:"min=0,max=100"`
	MoleStyle     string `json:"moleStyle" validate:"oneof=default cute cool"`
	BGMType       string `json:"bgmType" validate:"oneof=happy calm energetic dreamy"`
	StartingScope string `json:"startingScope"`
}

// Defaults returns the settings used when nothing valid is stored.
func Defaults(firstScope string) Settings {
	return Settings{
		GameDuration:  60,
		BGMVolume:     30,
		SFXVolume:     50,
		MoleStyle:     "default",
		BGMType:       "happy",
		StartingScope: firstScope,
	}
}

// Validate checks field ranges.
func (s Settings) Validate() error {
	if err := validator.ValidateStruct(s); err != nil {
		return err
	}
	if s.GameDuration%DurationStep != 0 {
		return fmt.Errorf("validation failed: gameDuration must be a multiple of %d", DurationStep)
	}
	return nil
}

// Store reads and writes Settings under storage.KeySettings.
type Store struct {
	kv       storage.KV
	catalog  *vocab.Catalog
	logger   *log.Logger
	current  Settings
	defaults Settings
}

// NewStore loads settings. Missing, corrupt or invalid data is replaced by
// defaults, as is a starting scope the catalog does not know.
func NewStore(kv storage.KV, catalog *vocab.Catalog, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Store{
		kv:       kv,
		catalog:  catalog,
		logger:   logger,
		defaults: Defaults(catalog.Resolve("")),
	}
	s.current = s.load()
	return s
}

func (s *Store) load() Settings {
	raw, ok, err := s.kv.Get(storage.KeySettings)
	if err != nil {
		s.logger.Error("failed to load settings", "error", err)
		return s.defaults
	}
	if !ok {
		return s.defaults
	}

	loaded := s.defaults
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		s.logger.Error("discarding corrupt settings", "error", err)
		return s.defaults
	}
	if err := loaded.Validate(); err != nil {
		s.logger.Warn("discarding invalid settings", "error", err)
		return s.defaults
	}
	if !s.catalog.Has(loaded.StartingScope) {
		s.logger.Warn("unknown starting scope, using first", "scope", loaded.StartingScope)
		loaded.StartingScope = s.defaults.StartingScope
	}
	return loaded
}

// Get returns the current settings.
func (s *Store) Get() Settings {
	return s.current
}

// Save validates and persists next. The starting scope cannot be changed
// here; use ChangeStartingScope.
func (s *Store) Save(next Settings) error {
	next.StartingScope = s.current.StartingScope
	if err := next.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return s.write(next)
}

// Reset restores the defaults.
func (s *Store) Reset() error {
	return s.write(s.defaults)
}

// ChangeStartingScope moves the starting scope after the guard question was
// answered. Nothing is written on a wrong answer or an unknown scope.
func (s *Store) ChangeStartingScope(scope string, ch gate.Challenge, answer int) error {
	if !s.catalog.Has(scope) {
		return fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
	if !ch.Check(answer) {
		return ErrChallengeFailed
	}
	next := s.current
	next.StartingScope = scope
	return s.write(next)
}

// write applies next in memory and persists it. The in-memory value is kept
// even when the write fails.
func (s *Store) write(next Settings) error {
	s.current = next
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.kv.Set(storage.KeySettings, string(data)); err != nil {
		s.logger.Error("failed to save settings", "error", err)
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}
