// cannonball is a TUI platform for watching AI cannon duels in the terminal.
// Two bots trade shots at a bouncing ball, trying to knock it into the
// opponent's goal.
//
// Usage:
//
//	cannonball bots                      - List available bots
//	cannonball play <bot1> <bot2>        - Watch a match between two bots
//	cannonball simulate <bot1> <bot2>    - Run headless matches
//	cannonball results                   - Show recorded match results
//	cannonball serve                     - Start SSH server for remote spectating
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible matches
//	--db <path>      - Set database path (default: ~/.cannonball/matches.db)
//	--config <path>  - Path to custom match rules YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cannonball",
	Short: "Cannonball - AI cannon duels in your terminal",
	Long: `Cannonball is a terminal-based artillery football game where two
scripted bots shoot a ball toward each other's goal.

Available commands:
  bots      - Show all registered bots
  play      - Watch a match between two bots
  simulate  - Run headless matches and record results
  results   - View recorded match results
  serve     - Start SSH server for remote spectating

Examples:
  cannonball bots
  cannonball play striker lobber
  cannonball play striker lobber --seed 42
  cannonball simulate striker keeper --count 100
  cannonball results --limit 20
  cannonball serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cannonball/matches.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match rules YAML")

	// Add subcommands
	rootCmd.AddCommand(botsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
