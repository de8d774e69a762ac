package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmelnik/tui-snake/internal/config"
	"github.com/dmelnik/tui-snake/internal/core"
	"github.com/dmelnik/tui-snake/internal/game/level"
	"github.com/dmelnik/tui-snake/internal/platform/tui"
	"github.com/dmelnik/tui-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagLevelPack  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a new snake game.

Controls:
  WASD/Arrows - Steer the snake
  P           - Pause/Resume
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower snake, smaller level bonus
  normal - Default speed and scoring
  hard   - Faster snake, bigger level bonus
  fixed  - Config values used as-is

Examples:
  snake play
  snake play --level 5
  snake play --difficulty hard
  snake play --levels ./my-pack.yaml
  snake play --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (default: config or 1)")
	playCmd.Flags().StringVar(&flagLevelPack, "levels", "", "Path to a custom level pack YAML")
}

// loadGameSetup loads the config and the level catalog shared by play,
// menu, and serve.
func loadGameSetup() (config.SnakeConfig, level.Catalog, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, level.Catalog{}, fmt.Errorf("loading config: %w", err)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			return config.SnakeConfig{}, level.Catalog{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard, or fixed)", flagDifficulty)
		}
		config.ApplySnakePreset(&cfg, preset)
	}

	// Flag overrides the config's pack path
	packPath := cfg.Levels.Pack
	if flagLevelPack != "" {
		packPath = flagLevelPack
	}

	catalog := level.Builtin()
	if packPath != "" {
		catalog, err = level.LoadPack(packPath)
		if err != nil {
			return config.SnakeConfig{}, level.Catalog{}, fmt.Errorf("loading level pack: %w", err)
		}
	}

	return cfg, catalog, nil
}

// runtimeConfig builds the runtime config from the defaults, the actual
// terminal size, and the global seed flag.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed
	return rt
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, catalog, err := loadGameSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.PlayOptions{
		Config:     cfg,
		Catalog:    catalog,
		StartLevel: flagLevel,
		Runtime:    rt,
	}, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
