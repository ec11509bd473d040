package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cannonball/internal/bots"
	"github.com/vovakirdan/cannonball/internal/config"
	"github.com/vovakirdan/cannonball/internal/core"
	"github.com/vovakirdan/cannonball/internal/engine"
	"github.com/vovakirdan/cannonball/internal/platform/tui"
	"github.com/vovakirdan/cannonball/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <bot1> <bot2>",
	Short: "Watch a match between two bots",
	Long: `Start a match between two registered bots and watch it in the terminal.
Bot1 defends the left goal, bot2 the right.

Controls:
  P/Space    - Pause
  R          - Rematch (after the match ends)
  Q/Ctrl+C   - Quit

Examples:
  cannonball play striker lobber
  cannonball play striker striker --seed 42
  cannonball play keeper lobber --config ./my-rules.yaml`,
	Args: cobra.ExactArgs(2),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
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

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Each bot gets its own entropy stream derived from the match seed.
	left, err := bots.Create(name1, rules, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating bot: %v\n", err)
		os.Exit(1)
	}
	right, err := bots.Create(name2, rules, seed+1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating bot: %v\n", err)
		os.Exit(1)
	}

	match := engine.NewMatch(rules, left, right)

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	runErr := tui.Run(match, name1, name2, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
