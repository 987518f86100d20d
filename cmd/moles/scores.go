package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-moles/internal/session"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best recorded sessions. Only the top 20 are kept.

Examples:
  moles scores
  moles scores --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of records to show")
}

func runScores(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.store == nil {
		return errors.New("leaderboard unavailable: database could not be opened")
	}

	records, err := a.store.TopRecords(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'moles play' to get on the board!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-9s  %-8s  %-7s  %-5s  %-16s  %s\n",
		"Rank", "Score", "Mode", "Scope", "Hits", "Combo", "Title", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-8s  %-7s  %-5s  %-16s  %s\n",
		"----", "-----", "----", "-----", "----", "-----", "-----", "----")

	for i, r := range records {
		scope := r.Scope
		if scope == "" {
			scope = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-9s  %-8s  %-7s  %-5d  %-16s  %s\n",
			i+1, r.Score, r.Mode, scope,
			fmt.Sprintf("%d/%d", r.Correct, r.Answered),
			r.MaxCombo, session.Rank(r.Score),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := a.store.GetStats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f\n", stats.HighScore, stats.Games, stats.AvgScore)
	}
	return nil
}
