package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagResetMastery bool
	flagResetWrong   bool
	flagResetRecords bool
	flagResetAll     bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear learner state",
	Long: `Clear mastery progress, the wrong-words queue and/or the leaderboard.
At least one flag is required.

Examples:
  moles reset --wrong
  moles reset --mastery --records
  moles reset --all`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	f := resetCmd.Flags()
	f.BoolVar(&flagResetMastery, "mastery", false, "Clear mastery progress")
	f.BoolVar(&flagResetWrong, "wrong", false, "Clear the wrong-words queue")
	f.BoolVar(&flagResetRecords, "records", false, "Clear the leaderboard")
	f.BoolVar(&flagResetAll, "all", false, "Clear everything")
}

func runReset(cmd *cobra.Command, _ []string) error {
	if flagResetAll {
		flagResetMastery, flagResetWrong, flagResetRecords = true, true, true
	}
	if !flagResetMastery && !flagResetWrong && !flagResetRecords {
		return errors.New("nothing to reset: pass --mastery, --wrong, --records or --all")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if flagResetMastery {
		a.mastery.Clear()
		fmt.Println("Mastery progress cleared.")
	}
	if flagResetWrong {
		a.wrong.Clear()
		fmt.Println("Wrong-words queue cleared.")
	}
	if flagResetRecords {
		if a.store == nil {
			return errors.New("leaderboard unavailable: database could not be opened")
		}
		if err := a.store.ClearRecords(); err != nil {
			return err
		}
		fmt.Println("Leaderboard cleared.")
	}
	return nil
}
