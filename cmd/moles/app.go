package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/word-moles/internal/config"
	"github.com/vovakirdan/word-moles/internal/core"
	"github.com/vovakirdan/word-moles/internal/learning"
	"github.com/vovakirdan/word-moles/internal/session"
	"github.com/vovakirdan/word-moles/internal/settings"
	"github.com/vovakirdan/word-moles/internal/speech"
	"github.com/vovakirdan/word-moles/internal/storage"
	"github.com/vovakirdan/word-moles/internal/vocab"
)

// app holds everything a command needs, built once per invocation.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	logFile  *os.File
	store    *storage.Store // nil when the database could not be opened
	kv       storage.KV
	catalog  *vocab.Catalog
	mastery  *learning.MasteryStore
	wrong    *learning.RemediationQueue
	settings *settings.Store
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(config.Options{
		Path:     flagConfig,
		Flags:    cmd.Flags(),
		FlagKeys: flagKeys,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	a.logger, a.logFile = newLogger(cfg)

	catalog, err := vocab.Load(config.ExpandPath(cfg.VocabularyPath))
	if err != nil {
		a.Close()
		return nil, err
	}
	a.catalog = catalog

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database, progress will not be saved: %v\n", err)
		a.logger.Error("failed to open database", "path", cfg.DBPath, "error", err)
		a.kv = storage.NewMemoryKV()
	} else {
		a.store = store
		a.kv = store
	}

	a.mastery = learning.NewMasteryStore(a.kv, a.logger.WithPrefix("mastery"))
	a.wrong = learning.NewRemediationQueue(a.kv, a.logger.WithPrefix("wrong-words"))
	a.settings = settings.NewStore(a.kv, a.catalog, a.logger.WithPrefix("settings"))

	return a, nil
}

// newLogger writes to the configured log file since the TUI owns the
// terminal. Falls back to stderr at warn level if the file cannot be opened.
func newLogger(cfg *config.Config) (*log.Logger, *os.File) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	if cfg.LogFile != "" {
		path := config.ExpandPath(cfg.LogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				return log.NewWithOptions(f, log.Options{
					Level:           level,
					ReportTimestamp: true,
					Prefix:          "moles",
				}), f
			}
		}
	}

	return log.NewWithOptions(os.Stderr, log.Options{Level: max(level, log.WarnLevel), Prefix: "moles"}), nil
}

func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// runtimeConfig reads the terminal size and picks a seed.
func (a *app) runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: a.cfg.TickRate,
		Seed:     seed,
	}
}

// newSession builds a session with the configured voice.
func (a *app) newSession(mode session.Mode, scope string, rt core.RuntimeConfig) *session.Session {
	voice, err := speech.Resolve(a.cfg.Voice)
	if err != nil {
		a.logger.Warn("speech disabled", "voice", a.cfg.Voice, "error", err)
		voice = speech.Silent{}
	}

	return session.New(session.Config{
		Mode:     mode,
		Scope:    scope,
		Duration: a.settings.Get().GameDuration,
		Runtime:  rt,
	}, session.Deps{
		Catalog:     a.catalog,
		Mastery:     a.mastery,
		Remediation: a.wrong,
		Pronouncer:  voice,
		Logger:      a.logger.WithPrefix("session"),
	})
}
