package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-moles/internal/registry"
	"github.com/vovakirdan/word-moles/internal/speech"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List speech backends",
	Long:  `Shows every registered speech backend and whether it can run here.`,
	Args:  cobra.NoArgs,
	Run:   runVoices,
}

func runVoices(_ *cobra.Command, _ []string) {
	voices := registry.List()

	fmt.Println("Available voices:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range voices {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Status")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "------")

	for _, v := range voices {
		status := "available"
		if !v.Available {
			status = "not installed"
		}
		fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, v.ID, v.Title, status)
	}

	fmt.Println()
	if v, err := speech.Resolve(speech.Auto); err == nil {
		fmt.Printf("'--voice %s' currently uses: %s\n", speech.Auto, v.Title())
	}
}
