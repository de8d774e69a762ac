// snake is a terminal snake game with a ten-level campaign.
//
// Usage:
//
//	snake play               - Start a new game
//	snake menu               - Interactive menu with level picker
//	snake levels             - List campaign levels
//	snake scores             - Show the run leaderboard
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--db <path>     - Set database path (default: ~/.tui-snake/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a terminal snake campaign",
	Long: `Snake is a terminal game where you guide a growing snake through
a campaign of obstacle levels, eating food and dodging walls.

Available commands:
  play     - Start a game directly
  menu     - Interactive menu with level picker and scoreboard
  levels   - List campaign levels
  scores   - View the run leaderboard
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --level 4 --difficulty hard
  snake menu
  snake serve --ssh :2222
  snake scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-snake/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
