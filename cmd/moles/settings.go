package main

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-moles/internal/gate"
	"github.com/vovakirdan/word-moles/internal/settings"
)

var (
	flagDuration  int
	flagMoleStyle string
	flagBGMType   string
	flagBGMVolume int
	flagSFXVolume int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	Long: `Without a subcommand, prints the current settings.

Examples:
  moles settings
  moles settings set --duration 90 --style cute
  moles settings scope 6年级
  moles settings reset`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change session length, mole style or sound",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSet,
}

var settingsScopeCmd = &cobra.Command{
	Use:   "scope <scope>",
	Short: "Change the starting scope",
	Long: `Change the starting scope. The starting scope and every scope before it
are unlocked regardless of mastery. A multiplication question must be
answered first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsScope,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	f := settingsSetCmd.Flags()
	f.IntVar(&flagDuration, "duration", 0, "Session length in seconds (30-180, steps of 30)")
	f.StringVar(&flagMoleStyle, "style", "", "Mole style: "+strings.Join(settings.MoleStyles, ", "))
	f.StringVar(&flagBGMType, "bgm", "", "Music type: "+strings.Join(settings.BGMTypes, ", "))
	f.IntVar(&flagBGMVolume, "bgm-volume", -1, "Music volume 0-100")
	f.IntVar(&flagSFXVolume, "sfx-volume", -1, "Effects volume 0-100")

	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsScopeCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func printSettings(s settings.Settings) {
	fmt.Printf("  %-15s %ds\n", "Duration", s.GameDuration)
	fmt.Printf("  %-15s %s\n", "Mole style", s.MoleStyle)
	fmt.Printf("  %-15s %s\n", "Music", s.BGMType)
	fmt.Printf("  %-15s %d\n", "Music volume", s.BGMVolume)
	fmt.Printf("  %-15s %d\n", "Effects volume", s.SFXVolume)
	fmt.Printf("  %-15s %s\n", "Starting scope", s.StartingScope)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	printSettings(a.settings.Get())
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	next := a.settings.Get()
	f := cmd.Flags()
	if f.Changed("duration") {
		next.GameDuration = flagDuration
	}
	if f.Changed("style") {
		next.MoleStyle = flagMoleStyle
	}
	if f.Changed("bgm") {
		next.BGMType = flagBGMType
	}
	if f.Changed("bgm-volume") {
		next.BGMVolume = flagBGMVolume
	}
	if f.Changed("sfx-volume") {
		next.SFXVolume = flagSFXVolume
	}

	if err := a.settings.Save(next); err != nil {
		return err
	}
	printSettings(a.settings.Get())
	return nil
}

func runSettingsScope(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	scope := args[0]
	if !a.catalog.Has(scope) {
		return fmt.Errorf("unknown scope %q; run 'moles scopes' to list them", scope)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ch := gate.NewChallenge(rand.New(rand.NewSource(seed)))

	fmt.Println(ch.Prompt())
	fmt.Print("> ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("read answer: %w", err)
	}
	answer, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		answer = -1
	}

	err = a.settings.ChangeStartingScope(scope, ch, answer)
	switch {
	case errors.Is(err, settings.ErrChallengeFailed):
		fmt.Printf("Not quite: %d × %d = %d. Starting scope unchanged.\n", ch.A, ch.B, ch.Answer())
		return nil
	case err != nil:
		return err
	}

	fmt.Printf("Starting scope is now %s.\n", scope)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.settings.Reset(); err != nil {
		return err
	}
	printSettings(a.settings.Get())
	return nil
}
