package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-moles/internal/core"
	"github.com/vovakirdan/word-moles/internal/gate"
	"github.com/vovakirdan/word-moles/internal/platform/tui"
	"github.com/vovakirdan/word-moles/internal/session"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu (default)",
	Long: `Start word-moles in interactive menu mode.

Pick a scope to practice, clear your wrong words, or look at the
leaderboard. After a session ends you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Leaderboard
  1-6          - Whack the mole in that hole
  R            - Hear the word again
  Space        - Skip the result card
  Esc          - Back to menu
  Q            - Quit

Examples:
  moles menu
  moles menu --fps 60
  moles menu --db ./moles.db`,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.runtimeConfig()

	// Menu loop
	for {
		status := tui.MenuStatus{
			Mastered:   a.mastery.Total(),
			WrongWords: a.wrong.Count(),
		}
		if a.store != nil {
			if hs, err := a.store.HighScore(); err == nil {
				status.HighScore = hs
			}
		}

		menuResult, err := tui.RunMenu(status, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		switch menuResult.Choice {
		case tui.MenuChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(a.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePractice:
			statuses := gate.Evaluate(a.catalog, a.mastery, a.settings.Get().StartingScope)
			scope, quit, selErr := tui.RunScopeSelector(statuses, cfg)
			if selErr != nil {
				return selErr
			}
			if quit {
				return nil
			}
			if scope == "" {
				continue // Back to menu
			}
			if err := a.play(session.ModePractice, scope, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
			}

		case tui.MenuChoiceChallenge:
			if err := a.play(session.ModeChallenge, "", cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
			}
		}

		// Fresh seed for the next session
		cfg.Seed = a.runtimeConfig().Seed
	}
}

// play runs one session screen.
func (a *app) play(mode session.Mode, scope string, cfg core.RuntimeConfig) error {
	sess := a.newSession(mode, scope, cfg)
	sum, err := tui.Run(sess, a.store, cfg, a.settings.Get().MoleStyle, a.logger.WithPrefix("tui"))
	if err != nil {
		return err
	}
	if sum != nil {
		a.logger.Info("session finished",
			"mode", sum.Mode.String(),
			"scope", sum.Scope,
			"score", sum.Score,
			"rank", sum.Rank,
		)
	}
	return nil
}
