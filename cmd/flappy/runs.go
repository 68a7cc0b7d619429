package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Show every finished run: tubes passed, what ended it, how long it
lasted and the seed that generated its tubes. Replay a course with
flappy play --seed <seed>.

Examples:
  flappy runs
  flappy runs --plain --limit 20
  flappy runs --seed 42 --plain
  flappy runs --clear`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs instead of opening the browser")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Runs to print in plain mode")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Println("Run journal cleared.")
		return nil
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunJournal(store, gameID, width, height)
	}

	var runs []storage.Run
	if cmd.Flags().Changed("seed") {
		runs, err = store.RunsBySeed(gameID, flagSeed)
	} else {
		runs, err = store.RecentRuns(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println("Run Journal - Flappy Bird")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to start the journal!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-6s  %-8s  %-7s  %-20s  %s\n", "#", "Passed", "Hit", "Time", "Seed", "Date")
	fmt.Printf("  %-5s  %-6s  %-8s  %-7s  %-20s  %s\n", "-", "------", "---", "----", "----", "----")

	for _, r := range runs {
		fmt.Printf("  %-5d  %-6d  %-8s  %-7.1f  %-20d  %s\n",
			r.ID, r.Passed, r.Cause, r.Duration.Seconds(), r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(tui.FormatStats(stats))
	return nil
}
