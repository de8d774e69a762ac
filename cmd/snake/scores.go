package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmelnik/tui-snake/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run leaderboard",
	Long: `Display the top 10 runs.

Examples:
  snake scores
  snake scores --db ./runs.db`,
	Run: runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "Rank", "Score", "Level", "Outcome", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-10s  %s\n", "----", "-----", "-----", "-------", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-10s  %s\n", i+1, entry.Score, entry.LevelReached, entry.Outcome, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	if stats, err := store.Stats(); err == nil && stats.RunsCount > 0 {
		fmt.Printf("Runs: %d  Victories: %d  Best level: %d\n",
			stats.RunsCount, stats.Victories, stats.BestLevel)
	}
}
