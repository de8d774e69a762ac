package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmelnik/tui-snake/internal/platform/tui"
	"github.com/dmelnik/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with an interactive menu",
	Long: `Start snake in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. After a game
ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  snake menu
  snake menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagLevelPack, "levels", "", "Path to a custom level pack YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, catalog, err := loadGameSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	rt := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(catalog, rt.ScreenW, rt.ScreenH)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.Selection == nil {
			break
		}

		// Fresh seed for each game unless one was pinned
		gameRT := rt
		if gameRT.Seed == 0 {
			gameRT.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(tui.PlayOptions{
			Config:     cfg,
			Catalog:    catalog,
			StartLevel: menuResult.Selection.StartLevel,
			Runtime:    gameRT,
		}, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
