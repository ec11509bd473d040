package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cannonball/internal/bots"
)

var botsCmd = &cobra.Command{
	Use:   "bots",
	Short: "List all available bots",
	Long:  `Shows a list of all bots registered on the platform.`,
	Run:   runBots,
}

func runBots(cmd *cobra.Command, args []string) {
	infos := bots.List()

	if len(infos) == 0 {
		fmt.Println("No bots available.")
		return
	}

	fmt.Println("Available bots:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, b := range infos {
		if len(b.Name) > maxNameLen {
			maxNameLen = len(b.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	// Print bots
	for _, b := range infos {
		fmt.Printf("  %-*s  %s\n", maxNameLen, b.Name, b.Description)
	}

	fmt.Println()
	fmt.Println("Run 'cannonball play <bot1> <bot2>' to start a match.")
}
