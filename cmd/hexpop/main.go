// hexpop is a hexagonal bubble shooter for the terminal.
//
// Usage:
//
//	hexpop list              - List game modes
//	hexpop play [mode]       - Play classic (default) or endless
//	hexpop menu              - Pick a mode interactively
//	hexpop serve             - Start SSH server for remote play
//	hexpop scores [mode]     - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpop/internal/games/hexpop"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "hexpop",
	Short: "Hex Pop - a bubble shooter in your terminal",
	Long: `Hex Pop is a hexagonal bubble shooter for the terminal.

Aim the launcher, fire colored bubbles into the field and pop groups
of three or more. Anything cut off from the ceiling drops for a bonus.
Miss too often and the field is pushed down toward the death line.

Available commands:
  list     - Show game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hexpop play
  hexpop play endless --difficulty hard
  hexpop menu
  hexpop serve --ssh :2222
  hexpop scores endless`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// resolveGameID maps a mode name or game ID from the command line to a
// registered game ID. An empty name means classic.
func resolveGameID(name string) (string, error) {
	switch name {
	case "", "classic", hexpop.IDClassic:
		return hexpop.IDClassic, nil
	case "endless", hexpop.IDEndless:
		return hexpop.IDEndless, nil
	}
	return "", fmt.Errorf("unknown mode %q (use classic or endless)", name)
}
