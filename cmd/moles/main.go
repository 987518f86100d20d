// moles is a terminal whack-a-mole vocabulary trainer.
//
// Usage:
//
//	moles                    - Start the interactive menu
//	moles play [scope]       - Practice a scope directly
//	moles challenge          - Practice the wrong-words queue
//	moles scopes             - Show scopes, progress and locks
//	moles words              - List the wrong-words queue
//	moles scores             - Show the leaderboard
//	moles settings           - Show or change settings
//	moles voices             - List speech backends
//	moles reset              - Clear learner state
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.moles/config.yaml)
//	--db <path>         - Database path (default: ~/.moles/moles.db)
//	--vocab <path>      - Vocabulary pack YAML
//	--voice <name>      - Speech backend (default: auto)
//	--fps <rate>        - Tick rate
//	--seed <value>      - RNG seed for reproducible rounds
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagVocab    string
	flagVoice    string
	flagFPS      int
	flagLogLevel string
)

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"db":        "db_path",
	"vocab":     "vocabulary_path",
	"voice":     "voice",
	"fps":       "tick_rate",
	"log-level": "log_level",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "moles",
	Short: "Word Moles - whack the right translation",
	Long: `Word Moles is a terminal vocabulary game. A word is shown, moles pop
out of six holes carrying candidate translations, and you whack the right one
before the clock runs out.

Correct answers build mastery per scope; mastering 80% of a scope unlocks the
next one. Missed words go to a wrong-words queue you can clear in challenge
mode by answering each one right three times in a row.

Examples:
  moles
  moles play 1年级
  moles challenge
  moles scores`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config file")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "", "Path to the database (default ~/.moles/moles.db)")
	pf.StringVar(&flagVocab, "vocab", "", "Path to a vocabulary pack YAML")
	pf.StringVar(&flagVoice, "voice", "", "Speech backend: auto, silent, say, espeak-ng, espeak")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, default 30)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(scopesCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(voicesCmd)
	rootCmd.AddCommand(resetCmd)
}
