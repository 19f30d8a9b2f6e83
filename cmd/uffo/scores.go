package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/uffo/internal/platform/tui"
	"github.com/vovakirdan/uffo/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display the best runs recorded in the run history database.

Examples:
  uffo scores
  uffo scores --limit 25
  uffo scores --recent
  uffo scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagInteractive {
		if _, err := showScoreboard(terminalSize()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	title := "Best Runs"
	var runs []storage.Run
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("%s - uffo\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'uffo play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-10s  %s\n", "Rank", "Score", "Speedups", "Time", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-10s  %s\n", "----", "-----", "--------", "----", "----------", "----")

	for i, r := range runs {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "normal"
		}
		fmt.Printf("  %-4d  %-6d  %-8d  %-6s  %-10s  %s\n",
			i+1, r.Score, r.Milestones, tui.FormatDuration(r.Duration), difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show summary
	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Played: %s\n",
			stats.HighScore, stats.Runs, stats.AvgScore, time.Duration(stats.TotalPlayTime*float64(time.Second)).Round(time.Second))
	}
}
