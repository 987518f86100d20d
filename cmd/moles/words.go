package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-moles/internal/learning"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the wrong-words queue",
	Long: `Show every word in the wrong-words queue with how often it was missed
and the current streak of correct answers toward clearing it.`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func runWords(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	records := a.wrong.All()
	if len(records) == 0 {
		fmt.Println("The wrong-words queue is empty.")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-8s  %-6s  %-6s  %s\n", "Word", "Meaning", "Scope", "Missed", "Streak", "Last missed")
	fmt.Printf("  %-16s  %-10s  %-8s  %-6s  %-6s  %s\n", "----", "-------", "-----", "------", "------", "-----------")
	for _, r := range records {
		fmt.Printf("  %-16s  %-10s  %-8s  %-6d  %d/%-4d  %s\n",
			r.Secondary, r.Primary, r.Scope, r.WrongCount,
			r.CorrectStreak, learning.ClearStreak,
			r.LastWrongAt.Format("2006-01-02 15:04"))
	}

	stats := a.wrong.Stats()
	fmt.Println()
	fmt.Printf("Total: %d  |  Misses: %d  |  Average misses: %.1f\n", stats.Total, stats.TotalWrong, stats.AverageWrong)
	for _, scope := range a.catalog.Scopes() {
		if n := stats.ByScope[scope]; n > 0 {
			fmt.Printf("  %s: %d\n", scope, n)
		}
	}
	fmt.Println()
	fmt.Println("Run 'moles challenge' to clear them.")
	return nil
}
