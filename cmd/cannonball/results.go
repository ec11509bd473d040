package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cannonball/internal/storage"
)

var (
	flagResultsLimit int
	flagResultsBot   string
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded match results",
	Long: `Display the most recent match results, newest first.

Examples:
  cannonball results
  cannonball results --limit 50
  cannonball results --bot striker`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 20, "Maximum number of matches to show")
	resultsCmd.Flags().StringVar(&flagResultsBot, "bot", "", "Also show aggregate stats for this bot")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.RecentMatches(flagResultsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if len(results) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'cannonball play <bot1> <bot2>' or 'cannonball simulate' first.")
		return
	}

	fmt.Println("Recent matches:")
	fmt.Println()
	fmt.Printf("  %-16s  %-24s  %-7s  %-6s  %-9s  %s\n", "Date", "Match", "Score", "Rounds", "Reason", "Winner")
	fmt.Printf("  %-16s  %-24s  %-7s  %-6s  %-9s  %s\n", "----", "-----", "-----", "------", "------", "------")

	for _, r := range results {
		winner := r.Bot1
		if r.Winner == 2 {
			winner = r.Bot2
		}
		fmt.Printf("  %-16s  %-24s  %-7s  %-6d  %-9s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%s vs %s", r.Bot1, r.Bot2),
			fmt.Sprintf("%d:%d", r.Score1, r.Score2),
			r.Rounds,
			r.EndReason,
			winner,
		)
	}

	if flagResultsBot == "" {
		return
	}

	stats, err := store.GetBotStats(flagResultsBot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving bot stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Stats for %s:\n", flagResultsBot)
	fmt.Printf("  Matches: %d\n", stats.Matches)
	fmt.Printf("  Wins:    %d\n", stats.Wins)
	fmt.Printf("  Goals:   %d for / %d against\n", stats.GoalsFor, stats.GoalsAgst)
}
