package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/games/hexpop"
	"github.com/vovakirdan/hexpop/internal/platform/tui"
	"github.com/vovakirdan/hexpop/internal/registry"
	"github.com/vovakirdan/hexpop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing classic (default) or endless mode.

Controls:
  Left/Right   - Aim
  Space/Up     - Fire
  X/Tab        - Swap the next two bubbles
  E            - Load the held item (bomb or laser)
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options (a picker is shown when omitted):
  easy   - 4 start rows, 4 colors, 7 misses per penalty
  normal - 5 start rows, 6 colors, 5 misses per penalty
  hard   - 6 start rows, 6 colors, 4 misses per penalty
  fixed  - Miss threshold never tightens with score

Examples:
  hexpop play
  hexpop play endless
  hexpop play --difficulty hard
  hexpop play --seed 42 --difficulty fixed
  hexpop play --config ./my-hexpop.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	gameID, err := resolveGameID(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'hexpop list' to see available modes.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	// Fail fast on a broken config file instead of silently using defaults
	if flagConfig != "" {
		if _, cfgErr := config.LoadHexpop(flagConfig); cfgErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cfgErr)
			os.Exit(1)
		}
	}
	hexpop.SetConfigPath(flagConfig)

	preset, ok := pickDifficulty(registryTitle(gameID), cfg)
	if !ok {
		return
	}
	hexpop.SetDifficultyPreset(string(preset))

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// pickDifficulty returns the preset from --difficulty, or asks for one.
// It reports false when the user backed out of the picker.
func pickDifficulty(title string, cfg core.RuntimeConfig) (config.DifficultyPreset, bool) {
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		return preset, true
	}

	preset, ok, err := tui.RunDifficultySelector(title, config.DifficultyNormal, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return preset, ok
}

func registryTitle(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}
