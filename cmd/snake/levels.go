package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmelnik/tui-snake/internal/game/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows all levels in the campaign with their speed and food targets.

With --levels, shows the contents of a custom level pack instead.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelPack, "levels", "", "Path to a custom level pack YAML")
}

func runLevels(_ *cobra.Command, _ []string) {
	catalog := level.Builtin()
	if flagLevelPack != "" {
		var err error
		catalog, err = level.LoadPack(flagLevelPack)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading level pack: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate name column width
	maxNameLen := 4 // "Name" header
	for _, name := range catalog.Names() {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	// Print header
	fmt.Printf("  %3s  %-*s  %5s  %4s  %s\n", "No.", maxNameLen, "Name", "Speed", "Food", "Obstacles")
	fmt.Printf("  %3s  %-*s  %5s  %4s  %s\n", "---", maxNameLen, "----", "-----", "----", "---------")

	// Print levels
	for n := 1; n <= catalog.Count(); n++ {
		lvl, err := catalog.Get(n)
		if err != nil {
			continue
		}
		fmt.Printf("  %3d  %-*s  %5s  %4d  %d\n",
			lvl.Number, maxNameLen, lvl.Name, lvl.Interval, lvl.FoodTarget, lvl.ObstacleCount())
	}

	fmt.Println()
	fmt.Println("Run 'snake play --level <n>' to start at a specific level.")
}
