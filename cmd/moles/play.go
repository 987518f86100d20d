package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-moles/internal/gate"
	"github.com/vovakirdan/word-moles/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [scope]",
	Short: "Practice a scope",
	Long: `Start a practice session on the given scope, or on the starting scope
from settings when none is given. Locked scopes cannot be played.

Controls:
  1-6        - Whack the mole in that hole
  R          - Hear the word again
  Space      - Skip the result card
  Esc/Q      - Leave

Examples:
  moles play
  moles play 1年级
  moles play 6年级 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Practice the wrong-words queue",
	Long: `Start a session over the words you missed before. Answering a word
right three times in a row removes it from the queue; the session ends when
the queue is empty or time runs out.`,
	Args: cobra.NoArgs,
	RunE: runChallenge,
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	start := a.settings.Get().StartingScope
	scope := start
	if len(args) == 1 {
		scope = args[0]
	}

	if !a.catalog.Has(scope) {
		return fmt.Errorf("unknown scope %q; run 'moles scopes' to list them", scope)
	}
	if !gate.Unlocked(a.catalog, a.mastery, start, scope) {
		return fmt.Errorf("scope %q is locked; master 80%% of the scopes before it first", scope)
	}

	return a.play(session.ModePractice, scope, a.runtimeConfig())
}

func runChallenge(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.wrong.Count() == 0 {
		fmt.Println("No wrong words to practice. Nice!")
		return nil
	}
	return a.play(session.ModeChallenge, "", a.runtimeConfig())
}
