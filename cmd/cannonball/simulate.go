package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cannonball/internal/bots"
	"github.com/vovakirdan/cannonball/internal/config"
	"github.com/vovakirdan/cannonball/internal/engine"
	"github.com/vovakirdan/cannonball/internal/storage"
)

var flagSimCount int

var simulateCmd = &cobra.Command{
	Use:   "simulate <bot1> <bot2>",
	Short: "Run headless matches between two bots",
	Long: `Run one or more matches without rendering and record the results.
Useful for comparing bots over many games. Consecutive matches use
consecutive seeds derived from --seed, so a whole run is reproducible.

Examples:
  cannonball simulate striker lobber
  cannonball simulate striker lobber --count 100
  cannonball simulate keeper passive --count 10 --seed 7`,
	Args: cobra.ExactArgs(2),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimCount, "count", 1, "Number of matches to run")
}

func runSimulate(cmd *cobra.Command, args []string) {
	name1, name2 := args[0], args[1]
	for _, name := range []string{name1, name2} {
		if !bots.Exists(name) {
			fmt.Fprintf(os.Stderr, "Error: unknown bot %q\n", name)
			fmt.Fprintln(os.Stderr, "Run 'cannonball bots' to see available bots.")
			os.Exit(1)
		}
	}

	matchCfg, err := config.LoadMatch(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	rules := matchCfg.ToRules()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simulate",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, results will not be saved", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	baseSeed := flagSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	var wins [3]int
	for i := 0; i < flagSimCount; i++ {
		seed := baseSeed + int64(i)

		left, err := bots.Create(name1, rules, seed)
		if err != nil {
			logger.Error("cannot create bot", "bot", name1, "error", err)
			os.Exit(1)
		}
		right, err := bots.Create(name2, rules, seed+1)
		if err != nil {
			logger.Error("cannot create bot", "bot", name2, "error", err)
			os.Exit(1)
		}

		match := engine.NewMatch(rules, left, right, engine.WithLogger(logger))
		match.Reset(flagFPS, seed)

		reason := runToCompletion(match, rules, flagFPS)

		snap := match.Snapshot()
		logger.Info("match finished",
			"n", i+1,
			"seed", seed,
			"score", fmt.Sprintf("%d:%d", snap.Score1, snap.Score2),
			"winner", match.Winner(),
			"reason", reason,
			"rounds", snap.Round+1,
		)
		wins[match.Winner()]++

		if store != nil {
			if _, err := store.SaveMatch(storage.MatchResult{
				MatchID:   uuid.NewString(),
				Bot1:      name1,
				Bot2:      name2,
				Score1:    snap.Score1,
				Score2:    snap.Score2,
				Winner:    int(snap.Winner),
				Rounds:    snap.Round + 1,
				Bullets1:  snap.Cannons[0].ShotsFired,
				Bullets2:  snap.Cannons[1].ShotsFired,
				Duration:  rules.MatchSeconds - snap.TimeLeft,
				EndReason: reason,
				Seed:      seed,
			}); err != nil {
				logger.Warn("could not save match", "error", err)
			}
		}
	}

	fmt.Println()
	fmt.Printf("Matches: %d\n", flagSimCount)
	fmt.Printf("  %-12s %d\n", name1+":", wins[engine.Player1])
	fmt.Printf("  %-12s %d\n", name2+":", wins[engine.Player2])
}

// runToCompletion steps a match until it ends and classifies the ending.
// The clock guarantees termination; the cap is a backstop against a rules
// misconfiguration with a zero tick rate.
func runToCompletion(match *engine.Match, rules engine.Rules, tickRate int) string {
	reason := "clock"
	maxTicks := int64(rules.MatchSeconds+1) * int64(tickRate)
	for t := int64(0); t <= maxTicks && !match.Over(); t++ {
		ev := match.Step()
		if !ev.MatchOver {
			continue
		}
		switch {
		case ev.Stalemate != engine.NoPlayer:
			reason = "stalemate"
		case ev.Goal != engine.NoPlayer:
			reason = "score"
		default:
			reason = "clock"
		}
	}
	return reason
}
