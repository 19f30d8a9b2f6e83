// uffo is a one-button arcade game: keep the saucer flying through the gaps.
//
// Usage:
//
//	uffo                 - Launcher menu (play, difficulty, run history)
//	uffo play            - Play in the terminal
//	uffo window          - Play in a desktop window
//	uffo scores          - Show run history
//	uffo config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set run history database (default: ~/.uffo/runs.db)
//	--highscore <path>  - Set high score file (default: ~/.uffo/highscore.txt)
//	--log <path>        - Log file for terminal play (default: ~/.uffo/uffo.log)
//	--verbose           - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagLogPath   string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "uffo",
	Short: "uffo - fly a saucer through the gaps",
	Long: `uffo is a one-button arcade game. Tap jump to keep the saucer in the
air and steer it through the gaps between the columns. Every 15 points the
game speeds up and day turns to night.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View run history
  config   - Print the effective configuration

Running uffo without a command opens the launcher menu.

Examples:
  uffo
  uffo play --difficulty hard
  uffo window --mute
  uffo scores --interactive
  uffo config --format toml`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to high score file (default ~/.uffo/highscore.txt)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", defaultLogPath, "Log file used while playing in the terminal")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Game flags shared by the menu and the play commands
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
