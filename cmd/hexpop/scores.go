package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexpop/internal/registry"
	"github.com/vovakirdan/hexpop/internal/storage"
)

var (
	flagRuns     int
	flagAllModes bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores and the latest runs for a mode.

Examples:
  hexpop scores
  hexpop scores endless
  hexpop scores --runs 20
  hexpop scores --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
	scoresCmd.Flags().BoolVar(&flagAllModes, "all", false, "Show a summary of every mode instead")
}

func runScores(cmd *cobra.Command, args []string) {
	if flagAllModes {
		runScoresSummary()
		return
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	gameID, err := resolveGameID(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hexpop play %s' to set the first high score!\n", name)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Best combo: %d  Cleared: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestCombo, stats.Wins)
	}

	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil || len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %-5s  %-5s  %s\n", "Score", "Shots", "Popped", "Dropped", "Combo", "Waves", "Result")
	for _, r := range runs {
		result := "lost"
		if r.Stats.Won {
			result = "cleared"
		}
		fmt.Printf("  %-8d  %-6d  %-6d  %-7d  %-5d  %-5d  %s\n",
			r.Score, r.Stats.Shots, r.Stats.Popped, r.Stats.Dropped, r.Stats.BestCombo, r.Stats.Waves, result)
	}
}

// runScoresSummary prints one line per mode that has recorded runs.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %-8s  %-6s  %s\n", "Mode", "Best", "Runs", "Average")
	for _, id := range ids {
		stats := all[id]
		fmt.Printf("  %-20s  %-8d  %-6d  %.0f\n",
			registryTitle(id), stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
