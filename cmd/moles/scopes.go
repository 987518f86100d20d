package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-moles/internal/gate"
)

var scopesCmd = &cobra.Command{
	Use:   "scopes",
	Short: "Show scopes with mastery progress",
	Long: `List every vocabulary scope in order with its size, how many words are
mastered, and whether it is completed or locked.

A scope is completed at 80% mastery. Each completed scope unlocks the next;
the starting scope from settings is always open along with everything
before it.`,
	Args: cobra.NoArgs,
	RunE: runScopes,
}

func runScopes(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	statuses := gate.Evaluate(a.catalog, a.mastery, a.settings.Get().StartingScope)

	fmt.Printf("  %-3s  %-10s  %-6s  %-9s  %s\n", "#", "Scope", "Words", "Mastered", "Status")
	fmt.Printf("  %-3s  %-10s  %-6s  %-9s  %s\n", "-", "-----", "-----", "--------", "------")
	for _, s := range statuses {
		state := "open"
		switch {
		case s.Locked:
			state = "locked"
		case s.Completed:
			state = "completed"
		}
		fmt.Printf("  %-3d  %-10s  %-6d  %-9d  %s\n", s.Index+1, s.Name, s.Size, s.Mastered, state)
	}

	fmt.Println()
	fmt.Printf("Mastered words: %d\n", a.mastery.Total())
	return nil
}
